// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storage publishes static video assets to S3-compatible object storage.

The production backend is Cloudflare R2, reached through the AWS SDK with a
custom endpoint. A local filesystem provider exists for dry runs and tests.
*/
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/taibuivan/nolfolio/internal/platform/constants"
)

// # Provider Contract

// Provider puts one object into a bucket.
type Provider interface {
	Put(ctx context.Context, key string, body io.Reader, contentType, cacheControl string) error
}

// Result describes one uploaded file.
type Result struct {
	File      string `json:"file"`
	Key       string `json:"key"`
	PublicURL string `json:"public_url"`
}

// # Directory Publishing

// Publisher uploads every MP4 under a directory to a key prefix.
type Publisher struct {
	provider  Provider
	publicURL string
	prefix    string
}

// NewPublisher builds a publisher; publicURL is the bucket's public base URL.
func NewPublisher(provider Provider, publicURL, prefix string) *Publisher {
	return &Publisher{
		provider:  provider,
		publicURL: strings.TrimRight(publicURL, "/"),
		prefix:    strings.Trim(prefix, "/"),
	}
}

// ListVideos returns the MP4 file names in dir, sorted.
func ListVideos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".mp4") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	return files, nil
}

// Key returns the object key for a file name.
func (publisher *Publisher) Key(file string) string {
	if publisher.prefix == "" {
		return file
	}
	return publisher.prefix + "/" + file
}

// URL returns the public URL of a key.
func (publisher *Publisher) URL(key string) string {
	return publisher.publicURL + "/" + key
}

// UploadFile uploads one file from dir with the immutable video headers.
func (publisher *Publisher) UploadFile(ctx context.Context, dir, file string) (Result, error) {
	handle, err := os.Open(filepath.Join(dir, file))
	if err != nil {
		return Result{}, fmt.Errorf("storage: open %s: %w", file, err)
	}
	defer handle.Close()

	key := publisher.Key(file)
	if err := publisher.provider.Put(ctx, key, handle, constants.VideoContentType, constants.ImmutableCacheControl); err != nil {
		return Result{}, fmt.Errorf("storage: upload %s: %w", file, err)
	}

	return Result{File: file, Key: key, PublicURL: publisher.URL(key)}, nil
}
