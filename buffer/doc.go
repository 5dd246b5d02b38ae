// Package buffer implements the byte-level text storage of the editor: a gap
// buffer over a file's raw content plus the (line, column) addressing layer.
//
// Positions are 0-based and count grapheme clusters per line. Offsets are byte
// indices into the logical content, i.e. the storage with the gap removed.
//
// A Buffer is not safe for concurrent use. Byte slices obtained from Spans are
// invalidated by any mutating call.
package buffer
