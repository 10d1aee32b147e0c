// Package imagehost forwards in-memory image buffers to the image host and
// returns their public URLs.
package imagehost

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/light-bringer/storefront-admin/internal/pkg/apperr"
)

// Uploader stores one image under folder and returns its public https URL.
type Uploader interface {
	Upload(ctx context.Context, folder string, data []byte) (string, error)
}

// ProductFolder is where product images for userID are stored.
func ProductFolder(userID string) string {
	return "products/" + userID
}

// ProfileFolder is where profile images for userID are stored.
func ProfileFolder(userID string) string {
	return "profiles/" + userID
}

// UploadAll uploads files with at most limit uploads in flight and returns the
// URLs in input order. The first failure cancels the uploads that have not
// started and is returned as apperr.ErrUploadFailed. Images already stored are
// left in place.
func UploadAll(ctx context.Context, up Uploader, folder string, files [][]byte, limit int) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = 1
	}

	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, data := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			url, err := up.Upload(gctx, folder, data)
			if err != nil {
				return fmt.Errorf("image %d: %w", i, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperr.Upload(err)
	}
	return urls, nil
}
