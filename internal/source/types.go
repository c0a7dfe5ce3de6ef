// Package source tracks source files and byte-offset spans used for
// diagnostics and node locations. It owns no identifier or type semantics;
// those live in internal/ident and internal/typesys respectively.
package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, fixture,
	// or a synthesized render target) rather than loaded from disk.
	FileVirtual FileFlags = 1 << iota
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
