package controller

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"studyhall_backend/internals/configs"
	helper "studyhall_backend/internals/helpers"
)

// UploadController converts profile and aadhaar photos to capped-width webp
// before storing them, so a 6 MB camera shot never lands on disk as-is.
type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

const maxImageWidth = 1024

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Image handles POST /api/a/uploads/image (multipart field "file").
// Responds with the public path the client stores on the student record.
func (ctl *UploadController) Image(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return helper.JsonError(c, fiber.StatusBadRequest, "unsupported image type")
	}

	src, err := fh.Open()
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "could not decode image")
	}
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(configs.UploadDir, 0o755); err != nil {
		return helper.JsonInternal(c, err)
	}
	name := uuid.NewString() + ".webp"
	dst, err := os.Create(filepath.Join(configs.UploadDir, name))
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	defer dst.Close()

	if err := webp.Encode(dst, img, &webp.Options{Quality: 82}); err != nil {
		return helper.JsonInternal(c, err)
	}

	return helper.JsonCreated(c, "image uploaded", fiber.Map{
		"url": "/uploads/" + name,
	})
}
