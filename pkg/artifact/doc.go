// Package artifact persists in-memory values to disk as versioned artifact
// files and loads them back.
//
// An artifact file is a stream of two documents written with the same
// codec: a Header identifying the format, its version, the codec and the Go
// type of the stored value, followed by the value itself. The codec is
// chosen from the file extension (.json, .yaml/.yml, .gob) and falls back to
// the store's default codec for any other extension, so "model.pkl" is a
// valid artifact path.
//
// Writes go straight into the destination file. There is no temp-file
// staging, locking or retry: a failure mid-write leaves whatever was
// written, and concurrent saves to the same path race. Every failure is
// returned as an *errors.StashError carrying the cause, the operation, the
// path and the caller's location.
package artifact
