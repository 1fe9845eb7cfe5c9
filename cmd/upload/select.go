package main

import (
	"mime"
	"path/filepath"

	"certidao-widget/internal/domain"

	"github.com/gabriel-vasile/mimetype"
)

// selectPath stages a file from disk. A drop declares the type sniffed from
// the content; the picker path declares whatever the extension maps to.
func selectPath(path string, pick bool) (*domain.SelectedFile, error) {
	if pick {
		return domain.NewSelectedFileFromPath(path, mediaType(mime.TypeByExtension(filepath.Ext(path))))
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}
	return domain.NewSelectedFileFromPath(path, mediaType(mtype.String()))
}

// mediaType drops parameters such as charset.
func mediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return contentType
	}
	return mt
}
