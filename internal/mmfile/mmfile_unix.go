//go:build unix

// Package mmfile maps document files into memory for parsing, falling back
// to a plain read where mapping is unavailable.
package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a read-only view of a document file's contents.
type File struct {
	data   []byte
	mapped bool
}

// Open maps the file at path into memory. Close releases the mapping; the
// returned bytes must not be used after that.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // the mapping keeps the pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &File{}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &File{data: data, mapped: true}, nil
}

// Bytes returns the file contents.
func (f *File) Bytes() []byte { return f.data }

// Close unmaps the file. Closing twice is a no-op.
func (f *File) Close() error {
	if !f.mapped || f.data == nil {
		return nil
	}
	data := f.data
	f.data = nil
	f.mapped = false
	if err := unix.Munmap(data); err != nil && !errors.Is(err, unix.EINVAL) {
		return err
	}
	return nil
}
