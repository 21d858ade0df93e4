// Package storage stores uploaded files on a named disk:
//
//   - "local": a directory served back under /storage
//   - "s3": any S3-compatible bucket (AWS, MinIO, R2)
//
//	storage.Connect()
//	err := storage.Default().Put(ctx, "images/ab12.jpg", r, "image/jpeg")
//	url := storage.Default().URL("images/ab12.jpg")
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

// Disk is the driver interface.
type Disk interface {
	// Put writes r to p, replacing any existing object.
	Put(ctx context.Context, p string, r io.Reader, contentType string) error

	// Delete removes p. Deleting a missing object is not an error.
	Delete(ctx context.Context, p string) error

	Exists(ctx context.Context, p string) bool

	// URL is the public address of p.
	URL(p string) string
}

var ErrInvalidPath = errors.New("storage: invalid path")

// cleanPath normalises p to a relative slash path and refuses escapes.
func cleanPath(p string) (string, error) {
	clean := path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	clean = strings.TrimPrefix(clean, "/")
	if clean == "" || clean == "." || strings.HasPrefix(clean, "..") {
		return "", ErrInvalidPath
	}
	return clean, nil
}
