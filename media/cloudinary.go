package media

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary uploads to a Cloudinary account under a root folder.
type Cloudinary struct {
	cld  *cloudinary.Cloudinary
	root string
}

// NewCloudinary configures an uploader from a cloudinary:// URL.
func NewCloudinary(url, root string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &Cloudinary{cld: cld, root: root}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, p Path, r io.Reader) (*Object, error) {
	params := uploader.UploadParams{
		Folder:         path.Join(c.root, p.Folder),
		PublicID:       p.Name,
		Overwrite:      api.Bool(true),
		ResourceType:   "auto",
		Transformation: p.Transformation,
	}

	res, err := c.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", p, err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload %s: %s", p, res.Error.Message)
	}

	return &Object{PublicID: res.PublicID, URL: res.SecureURL}, nil
}
