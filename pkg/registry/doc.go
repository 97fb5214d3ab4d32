// Package registry provides a generic, thread-safe map of named items.
//
// Names are case-insensitive: they are lowercased on every call. The codec
// package keeps its codecs and their file extensions in registries.
package registry
