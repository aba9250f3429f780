// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package s3scan walks notebooks under an S3 prefix for check mode. It is
// strictly read-only: remote notebooks are never stripped in place, only
// inspected, so a CI job can gate on notebooks that already landed in a
// data-lake bucket.
package s3scan

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nbstrip/nbstrip/internal/log"
)

// Client is the subset of the S3 API the scanner needs. *s3.Client satisfies
// it; tests supply a fake.
type Client interface {
	s3v2.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// ParseURI splits an s3://bucket/prefix URI. The prefix may be empty; the
// bucket may not.
func ParseURI(uri string) (bucket, prefix string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 URI: %s", uri)
	}

	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("missing bucket in s3 URI: %s", uri)
	}
	return bucket, prefix, nil
}

// Scan lists objects under uri and invokes fn with the key and body of each
// one whose key ends in a qualifying extension. Non-qualifying keys are
// skipped silently, matching the local file behavior; skipped is the count of
// objects passed over. The first error from paging, fetching, or fn stops the
// scan.
func Scan(ctx context.Context, client Client, uri string, exts []string, fn func(key string, body []byte) error) (skipped int, err error) {
	bucket, prefix, err := ParseURI(uri)
	if err != nil {
		return 0, err
	}

	paginator := s3v2.NewListObjectsV2Paginator(client, &s3v2.ListObjectsV2Input{
		Bucket: awsv2.String(bucket),
		Prefix: awsv2.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return skipped, fmt.Errorf("failed to list objects: %w", err)
		}

		for _, obj := range page.Contents {
			key := awsv2.ToString(obj.Key)
			if !qualifies(key, exts) {
				skipped++
				continue
			}

			body, err := fetch(ctx, client, bucket, key)
			if err != nil {
				return skipped, err
			}
			log.Debugf("fetched s3://%s/%s: %d bytes", bucket, key, len(body))

			if err := fn(key, body); err != nil {
				return skipped, err
			}
		}
	}

	return skipped, nil
}

func fetch(ctx context.Context, client Client, bucket, key string) ([]byte, error) {
	result, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}
	return data, nil
}

func qualifies(key string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(key, ext) {
			return true
		}
	}
	return false
}
