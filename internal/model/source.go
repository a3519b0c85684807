package model

import "path/filepath"

// SourceFile is one user-selected input file: an opaque byte payload plus the
// name and declared media type reported by the picker. It is never mutated
// after creation.
type SourceFile struct {
	Name string
	MIME string
	Data []byte
}

// Size returns the payload size in bytes.
func (sf SourceFile) Size() int64 {
	return int64(len(sf.Data))
}

// Ext returns the file name extension, including the leading dot.
func (sf SourceFile) Ext() string {
	return filepath.Ext(sf.Name)
}
