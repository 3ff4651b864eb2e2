package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

//go:generate mockgen -source=attachment.go -destination=attachment_mock.go -package=services

// ObjectStorage uploads binary content and returns a stable reference URL.
type ObjectStorage interface {
	Upload(ctx context.Context, data []byte, filename, folder string) (string, error)
}

// AttachmentCache remembers references of already uploaded content.
type AttachmentCache interface {
	GetReference(ctx context.Context, folder, digest string) (string, error)
	SetReference(ctx context.Context, folder, digest, ref string) error
}

// AttachmentResolver resolves receipt and wallet images to stored references.
type AttachmentResolver struct {
	storage ObjectStorage
	cache   AttachmentCache
}

// NewAttachmentResolver creates an AttachmentResolver. cache may be nil.
func NewAttachmentResolver(storage ObjectStorage, cache AttachmentCache) *AttachmentResolver {
	return &AttachmentResolver{storage: storage, cache: cache}
}

// Resolve returns nil for an empty payload, passes resolved references
// through unchanged and uploads raw content under folder.
func (r *AttachmentResolver) Resolve(ctx context.Context, payload *models.Attachment, folder string) (*string, error) {
	if payload.Empty() {
		return nil, nil
	}
	if payload.Ref != "" {
		ref := payload.Ref
		return &ref, nil
	}

	sum := sha256.Sum256(payload.Data)
	digest := hex.EncodeToString(sum[:])

	if r.cache != nil {
		ref, err := r.cache.GetReference(ctx, folder, digest)
		if err == nil && ref != "" {
			return &ref, nil
		}
	}

	ref, err := r.storage.Upload(ctx, payload.Data, payload.Filename, folder)
	if err != nil {
		logger.Log.Errorw("failed to upload attachment", "folder", folder, "digest", digest, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if r.cache != nil {
		if err := r.cache.SetReference(ctx, folder, digest, ref); err != nil {
			logger.Log.Warnw("failed to cache attachment reference", "folder", folder, "digest", digest, "error", err)
		}
	}

	return &ref, nil
}
