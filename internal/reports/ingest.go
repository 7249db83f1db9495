package reports

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// IngestFiles reads each named file into a data-URL attachment. Every file
// is read by its own task; results are appended as each read completes, so
// there is no ordering guarantee across files — only that each file's
// read-then-append is atomic for the caller. The first failure cancels the
// remaining reads.
func IngestFiles(ctx context.Context, paths []string) ([]Attachment, error) {
	var mu sync.Mutex
	out := make([]Attachment, 0, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := ingestFile(path)
			if err != nil {
				return err
			}
			mu.Lock()
			out = append(out, *a)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// IngestPictures is IngestFiles for the picture sequence, which carries no
// separate MIME field.
func IngestPictures(ctx context.Context, paths []string) ([]Picture, error) {
	attachments, err := IngestFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	pictures := make([]Picture, 0, len(attachments))
	for _, a := range attachments {
		pictures = append(pictures, Picture{Name: a.Name, URL: a.URL})
	}
	return pictures, nil
}

func ingestFile(path string) (*Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return &Attachment{
		Name: filepath.Base(path),
		URL:  "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
		Type: mimeType,
	}, nil
}
