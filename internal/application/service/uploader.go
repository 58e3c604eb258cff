package service

import (
	"context"
	"io"
)

// Uploader is the port to the remote asset store. Upload returns the durable
// asset URL; Delete removes the asset identified by its public ID.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
