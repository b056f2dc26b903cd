package cache

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"memos-widget/internal/checklist/repository"
)

type diskvCache struct {
	d   *diskv.Diskv
	key string
}

// New returns a BlobCache stored under dir. Each memo gets its own key derived
// from the memo's web URL so switching memos never shows a foreign blob.
func New(dir, memoURL string) repository.BlobCache {
	return &diskvCache{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 64 * 1024,
		}),
		key: Key(memoURL),
	}
}

// Key is the cache file name for memoURL.
func Key(memoURL string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(memoURL)).String()
}

func (c *diskvCache) Load(ctx context.Context) (string, error) {
	if !c.d.Has(c.key) {
		return "", nil
	}
	val, err := c.d.Read(c.key)
	if err != nil {
		return "", fmt.Errorf("read cached blob: %w", err)
	}
	return string(val), nil
}

func (c *diskvCache) Save(ctx context.Context, blob string) error {
	if err := c.d.Write(c.key, []byte(blob)); err != nil {
		return fmt.Errorf("write cached blob: %w", err)
	}
	return nil
}
