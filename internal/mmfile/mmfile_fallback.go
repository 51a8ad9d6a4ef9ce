//go:build !unix

// Package mmfile maps document files into memory for parsing, falling back
// to a plain read where mapping is unavailable.
package mmfile

import "os"

// File is a read-only view of a document file's contents.
type File struct {
	data []byte
}

// Open reads the entire file when memory mapping is not available.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{data: data}, nil
}

// Bytes returns the file contents.
func (f *File) Bytes() []byte { return f.data }

// Close releases the contents. Closing twice is a no-op.
func (f *File) Close() error {
	f.data = nil
	return nil
}
