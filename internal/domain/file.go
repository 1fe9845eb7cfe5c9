package domain

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// PDFMimeType is the only declared type accepted from a drop.
const PDFMimeType = "application/pdf"

// SelectedFile is the single file currently staged for upload.
type SelectedFile struct {
	Name string
	Type string
	Size int64

	open func() (io.ReadCloser, error)
}

// NewSelectedFileFromBytes stages an in-memory file, as received by the
// HTTP bridge.
func NewSelectedFileFromBytes(name, mimeType string, data []byte) *SelectedFile {
	return &SelectedFile{
		Name: name,
		Type: mimeType,
		Size: int64(len(data)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// NewSelectedFileFromPath stages a file on disk. The content is read lazily
// at submit time.
func NewSelectedFileFromPath(path, mimeType string) (*SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &ValidationError{Field: "file", Message: path + " is a directory"}
	}
	return &SelectedFile{
		Name: filepath.Base(path),
		Type: mimeType,
		Size: info.Size(),
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// Open returns a fresh reader over the file content.
func (f *SelectedFile) Open() (io.ReadCloser, error) {
	if f == nil || f.open == nil {
		return nil, ErrNoFileSelected
	}
	return f.open()
}

// IsPDF reports whether the declared type is exactly the PDF MIME type.
func (f *SelectedFile) IsPDF() bool {
	return f != nil && f.Type == PDFMimeType
}
