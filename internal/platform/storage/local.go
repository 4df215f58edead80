// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Local writes objects under RootPath, mirroring the key layout.
type Local struct {
	RootPath string
}

// Put copies body to RootPath/key. Headers are not persisted.
func (l *Local) Put(ctx context.Context, key string, body io.Reader, _, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(l.RootPath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, body)
	return err
}
