package controllers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/pkg/ctx"
	"github.com/shashiranjanraj/dinehub/pkg/storage"
)

// MaxImageBytes caps a single uploaded image.
const MaxImageBytes = 5 << 20

const tooLarge = "The file must not be larger than 5 MB."

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type UploadController struct {
	disk func() storage.Disk
}

// NewUploadController stores images on the disk returned by disk at
// request time.
func NewUploadController(disk func() storage.Disk) *UploadController {
	return &UploadController{disk: disk}
}

// Image handles POST /api/uploads/images with a multipart "file" field.
func (h *UploadController) Image(c *ctx.Context) {
	disk := h.disk()
	if disk == nil {
		fail(c, errors.New("uploads: no storage disk configured"))
		return
	}

	const bodyLimit = MaxImageBytes + (1 << 20)
	c.R.Body = http.MaxBytesReader(c.W, c.R.Body, bodyLimit)
	file, header, err := c.R.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) || c.R.ContentLength > bodyLimit {
			c.ValidationError(map[string]string{"file": tooLarge})
			return
		}
		c.ValidationError(map[string]string{"file": "The file field is required."})
		return
	}
	defer file.Close()

	if header.Size > MaxImageBytes {
		c.ValidationError(map[string]string{"file": tooLarge})
		return
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		fail(c, err)
		return
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := imageExtensions[contentType]
	if !ok {
		c.ValidationError(map[string]string{"file": "The file must be a jpeg, png, gif or webp image."})
		return
	}

	path := "images/" + uuid.NewString() + ext
	if err := disk.Put(c.Context(), path, io.MultiReader(bytes.NewReader(head), file), contentType); err != nil {
		fail(c, err)
		return
	}

	c.Log().Info("image uploaded", "path", path, "bytes", header.Size, "user_id", c.UserID())
	c.Created(map[string]string{"url": disk.URL(path), "path": path}, "Image uploaded successfully")
}
