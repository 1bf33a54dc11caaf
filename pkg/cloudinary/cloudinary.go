package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Client uploads company logos. Logos are the only media this system stores.
type Client interface {
	UploadLogo(ctx context.Context, file io.Reader, publicID string) (url string, err error)
}

const (
	logoFolder = "company_logos"
	logoWidth  = 400
	logoEager  = "q_auto,f_auto,w_400,c_fill"
)

var eagerAsyncFalse = false

type clientImpl struct {
	cloudName string
	uploader  *uploader.API
}

// BuildLogoURL returns a delivery URL with the standard logo transformation
// for an already-uploaded public ID.
func BuildLogoURL(cloudName, publicID string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/q_auto,f_auto,w_%d,c_fill/%s",
		cloudName, logoWidth, publicID)
}

// UploadLogo uploads a logo image with eager optimization and returns the
// delivery URL.
func (c *clientImpl) UploadLogo(ctx context.Context, file io.Reader, publicID string) (string, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:     logoFolder,
		PublicID:   publicID,
		Eager:      logoEager,
		EagerAsync: &eagerAsyncFalse,
	})
	if err != nil {
		return "", err
	}
	if len(result.Eager) > 0 {
		return result.Eager[0].SecureURL, nil
	}
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return BuildLogoURL(c.cloudName, result.PublicID), nil
}

// NewClientFromParams builds a Client from Cloudinary cloud name, API key, and secret.
func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &clientImpl{
		cloudName: cloudName,
		uploader:  up,
	}, nil
}
