// Package testutil provides utilities for testing stash components.
//
// Key components:
//   - TestEnvironment: a project root, filesystem, paths and configuration
//     wired together for command tests
//   - MockPaths: a fixed types.Pather
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; it runs on an afero memory filesystem
//   - Use EnvIsolated only when the code under test touches the OS directly
//   - Define test data inline, not in external files
package testutil
