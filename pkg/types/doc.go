// Package types defines the interfaces and result structures shared across
// stash: the filesystem abstraction, the path provider and the results
// returned by each command.
package types
