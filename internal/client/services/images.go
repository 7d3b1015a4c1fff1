package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageSize limits the files accepted for the avatar and cover slots.
const MaxImageSize = 5 << 20

// LoadImageFile reads an image and returns it as a data URL suitable for
// ProfileService.SetImage.
func LoadImageFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return "", ErrImageTooLarge
	}

	return ImageDataURL(data)
}

// ImageDataURL encodes raw image bytes as a base64 data URL. The media type
// is detected from the content.
func ImageDataURL(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotAnImage, mt.String())
	}

	// drop parameters such as "; charset=utf-8" that svg detection adds
	mime, _, _ := strings.Cut(mt.String(), ";")
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
