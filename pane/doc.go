// Package pane provides a Bubble Tea component that renders and edits one
// buffer.Buffer.
//
// The pane only uses the buffer's public surface: it reads the two content
// runs around the gap on every render and edits through CursorPlace and
// Insert.
package pane
