// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command r2upload publishes the site's MP4 files to Cloudflare R2.
//
// Credentials come from R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY
// and R2_BUCKET_NAME (a .env file is read first). R2_PUBLIC_URL defaults to
// the bucket's r2.dev address. With --local the files are copied to a
// directory instead and no credentials are needed.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}
