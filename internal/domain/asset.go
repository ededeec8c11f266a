package domain

import "context"

// AssetStore abstracts the external asset host. Upload returns the durable
// public URL; the key passed in doubles as the deletion handle.
type AssetStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}
