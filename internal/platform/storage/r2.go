// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// R2 uploads to a Cloudflare R2 bucket through the S3 API.
type R2 struct {
	uploader *s3manager.Uploader
	bucket   string
}

// R2Options configures an [R2] provider.
type R2Options struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

// NewR2 opens an AWS session against the R2 endpoint.
func NewR2(opts R2Options) (*R2, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Endpoint:         aws.String(opts.Endpoint),
		Region:           aws.String("auto"),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	return &R2{
		uploader: s3manager.NewUploader(sess),
		bucket:   opts.Bucket,
	}, nil
}

// Put streams body with multipart upload when it is large.
func (r *R2) Put(ctx context.Context, key string, body io.Reader, contentType, cacheControl string) error {
	input := &s3manager.UploadInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if cacheControl != "" {
		input.CacheControl = aws.String(cacheControl)
	}

	_, err := r.uploader.UploadWithContext(ctx, input)
	return err
}
