// Package storage adapts locally previewed images into remote URLs via the
// external media host.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrUploadFailed is returned for any upload that does not yield a usable
// remote URL. A record must never be written referencing an unresolved image.
var ErrUploadFailed = errors.New("image upload failed")

// ImageUploader converts a locally-encoded image payload into a remote URL.
type ImageUploader interface {
	// UploadDataURL uploads a base64 data URL and returns the secure URL of
	// the hosted image.
	UploadDataURL(ctx context.Context, dataURL string) (string, error)
}

// CloudinaryUploader implements ImageUploader using Cloudinary's unsigned
// upload endpoint, keyed only by the public cloud name and upload preset.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	preset string
	folder string
}

// NewCloudinaryUploader creates the uploader for a cloud name, preset and
// destination folder.
func NewCloudinaryUploader(cloudName, preset, folder string) (*CloudinaryUploader, error) {
	if cloudName == "" || preset == "" {
		return nil, fmt.Errorf("cloudinary cloud name and upload preset must be set")
	}
	cld, err := cloudinary.NewFromParams(cloudName, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, preset: preset, folder: folder}, nil
}

var dataURLPattern = regexp.MustCompile(`^data:(.*?);base64$`)

// decodeDataURL splits a "data:<mime>;base64,<payload>" string into its
// binary payload and mime type, defaulting to image/jpeg.
func decodeDataURL(dataURL string) ([]byte, string, error) {
	header, payload, found := strings.Cut(dataURL, ",")
	if !found {
		return nil, "", fmt.Errorf("%w: malformed data URL", ErrUploadFailed)
	}
	mime := "image/jpeg"
	if m := dataURLPattern.FindStringSubmatch(header); len(m) == 2 && m[1] != "" {
		mime = m[1]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid base64 payload", ErrUploadFailed)
	}
	return raw, mime, nil
}

// UploadDataURL performs the unsigned upload and returns the secure URL.
func (u *CloudinaryUploader) UploadDataURL(ctx context.Context, dataURL string) (string, error) {
	raw, _, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	result, err := u.cld.Upload.Upload(ctx, bytes.NewReader(raw), uploader.UploadParams{
		UploadPreset: u.preset,
		Folder:       u.folder,
		Unsigned:     api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("%w: no secure URL returned", ErrUploadFailed)
	}
	return result.SecureURL, nil
}
