package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-screener/internal/fetch"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
)

// readJobPosting returns the posting text from a local file, or from url when it is set.
// render enables the headless Chrome fallback for script-built pages.
func readJobPosting(ctx context.Context, path, url string, render bool) (string, *ingestion.Metadata, error) {
	if url == "" {
		text, meta, err := ingestion.IngestJobFile(path)
		if err != nil {
			return "", nil, fmt.Errorf("failed to ingest job posting: %w", err)
		}
		return text, meta, nil
	}

	opts := []fetch.Option{fetch.WithLogger(*logger.Ctx(ctx))}
	if render {
		opts = append(opts, fetch.WithRenderer(fetch.ChromeRenderer(fetch.DefaultTimeout)))
	}
	posting, err := fetch.New(opts...).JobPosting(ctx, url)
	if err != nil {
		return "", nil, err
	}
	return posting.Text, posting.Metadata, nil
}
