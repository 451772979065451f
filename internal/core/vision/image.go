package vision

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/gif"  // 支援 GIF 偵測
	_ "image/jpeg" // 支援 JPEG
	_ "image/png"  // 支援 PNG

	"cleanup-estimator/internal/pkg/common"

	_ "golang.org/x/image/webp" // 支援 WebP
)

// DefaultMaxImageBytes 照片大小上限
const DefaultMaxImageBytes = 10 << 20

// allowedMimeTypes 可接受的上傳類型
var allowedMimeTypes = map[string]string{
	"image/jpeg": "image/jpeg",
	"image/jpg":  "image/jpeg",
	"image/png":  "image/png",
	"image/webp": "image/webp",
}

// formatMimeTypes 解碼出的格式對應的 MIME 類型
var formatMimeTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

// ValidateImage 檢查宣告類型、大小與實際內容，回傳以實際格式為準的 Image
func ValidateImage(data []byte, mimeType string, maxBytes int64) (Image, error) {
	if len(data) == 0 {
		return Image{}, common.ErrInvalidImageFormat.WithMessage("no file provided")
	}

	declared := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(declared, ";"); i != -1 {
		declared = strings.TrimSpace(declared[:i])
	}
	if _, ok := allowedMimeTypes[declared]; !ok {
		return Image{}, common.ErrInvalidImageType.WithMessage(
			"invalid file type. Allowed types: image/jpeg, image/jpg, image/png, image/webp")
	}

	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	if int64(len(data)) > maxBytes {
		return Image{}, common.ErrInvalidImageSize.WithMessage(
			fmt.Sprintf("file too large. Maximum size: %dMB", maxBytes>>20))
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, common.ErrInvalidImageFormat.Wrap(err)
	}
	actual, ok := formatMimeTypes[format]
	if !ok {
		return Image{}, common.ErrInvalidImageType.WithMessage(fmt.Sprintf("unsupported image format: %s", format))
	}

	return Image{Data: data, MimeType: actual}, nil
}
