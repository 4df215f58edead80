// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/taibuivan/nolfolio/internal/platform/config"
	"github.com/taibuivan/nolfolio/internal/platform/storage"
)

const (
	defaultDir    = "public/videos"
	defaultPrefix = "videos"
	bytesPerMB    = 1024 * 1024
)

type uploadOptions struct {
	dir       string
	prefix    string
	localRoot string
	envFile   string
}

func newRootCommand() *cobra.Command {
	opts := uploadOptions{}

	cmd := &cobra.Command{
		Use:           "r2upload",
		Short:         "Upload MP4 videos to Cloudflare R2",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadEnvFile(opts.envFile); err != nil {
				return err
			}

			publisher, target, err := newPublisher(opts)
			if err != nil {
				return err
			}

			return upload(cmd, publisher, opts.dir, target)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", defaultDir, "Directory containing the MP4 files")
	cmd.Flags().StringVar(&opts.prefix, "prefix", defaultPrefix, "Object key prefix")
	cmd.Flags().StringVar(&opts.localRoot, "local", "", "Copy to this directory instead of R2 (dry run)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "Environment file read before the credentials")

	return cmd
}

// loadEnvFile reads path when it exists. Variables already set win.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// newPublisher returns the publisher and the public base URL it writes to.
func newPublisher(opts uploadOptions) (*storage.Publisher, string, error) {
	if opts.localRoot != "" {
		root, err := filepath.Abs(opts.localRoot)
		if err != nil {
			return nil, "", err
		}
		base := "file://" + filepath.ToSlash(root)
		return storage.NewPublisher(&storage.Local{RootPath: root}, base, opts.prefix), base, nil
	}

	cfg, err := config.LoadStorage()
	if err != nil {
		return nil, "", fmt.Errorf("%w (required: R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_BUCKET_NAME; optional: R2_PUBLIC_URL)", err)
	}

	provider, err := storage.NewR2(storage.R2Options{
		Endpoint:        cfg.Endpoint(),
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
		Bucket:          cfg.BucketName,
	})
	if err != nil {
		return nil, "", fmt.Errorf("open r2 session: %w", err)
	}

	return storage.NewPublisher(provider, cfg.PublicBaseURL(), opts.prefix), cfg.PublicBaseURL(), nil
}

// upload publishes every MP4 in dir, stopping at the first failure, then
// prints the file to URL map and the front-end variable to set.
func upload(cmd *cobra.Command, publisher *storage.Publisher, dir, publicURL string) error {
	out := cmd.OutOrStdout()

	files, err := storage.ListVideos(dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Found %d MP4 files to upload\n\n", len(files))

	uploaded := make(map[string]string, len(files))
	for _, file := range files {
		if info, statErr := os.Stat(filepath.Join(dir, file)); statErr == nil {
			fmt.Fprintf(out, "Uploading %s (%.2fMB)...\n", file, float64(info.Size())/bytesPerMB)
		}

		result, err := publisher.UploadFile(cmd.Context(), dir, file)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "  done: %s\n", result.PublicURL)
		uploaded[result.File] = result.PublicURL
	}

	return printSummary(out, uploaded, publicURL)
}

func printSummary(out io.Writer, uploaded map[string]string, publicURL string) error {
	summary, err := json.MarshalIndent(uploaded, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nUpload complete. Uploaded URLs:")
	fmt.Fprintln(out, string(summary))
	fmt.Fprintln(out, "\nAdd the public URL to the front-end .env file:")
	fmt.Fprintf(out, "  VITE_R2_PUBLIC_URL=%s\n", publicURL)

	return nil
}
