package imagehost

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader uploads through the Cloudinary upload API.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds an uploader from a CLOUDINARY_URL when one is
// given, otherwise from the cloud name and key pair.
func NewCloudinaryUploader(cloudURL, cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if cloudURL != "" {
		cld, err = cloudinary.NewFromURL(cloudURL)
	} else {
		cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	}
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload sends data to folder and returns the secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, folder string, data []byte) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", errors.New("no secure url returned")
	}
	return res.SecureURL, nil
}
