package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	awss3 "tasnim.dev/aws-ops/internal/aws/s3"
	"tasnim.dev/aws-ops/internal/ui"
)

// reportUploader stores a finished report file.
type reportUploader interface {
	UploadReport(ctx context.Context, bucket, prefix, name string, body io.Reader) (awss3.Location, error)
}

// uploadFlags are shared by the commands that write a report file.
type uploadFlags struct {
	bucket string
	prefix string
}

// resolve fills unset flags from the config file.
func (f uploadFlags) resolve(bucket, prefix string) uploadFlags {
	if f.bucket == "" {
		f.bucket = bucket
	}
	if f.prefix == "" {
		f.prefix = prefix
	}
	return f
}

// uploadReport copies the report at path to S3 when a bucket is set.
func uploadReport(ctx context.Context, up reportUploader, f uploadFlags, path string, out io.Writer) error {
	if f.bucket == "" {
		return nil
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("uploading report: %w", err)
	}
	defer file.Close()

	loc, err := up.UploadReport(ctx, f.bucket, f.prefix, path, file)
	if err != nil {
		return fmt.Errorf("uploading report: %w", err)
	}
	ui.PrintUploaded(out, loc.String())
	return nil
}
