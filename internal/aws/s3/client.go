package s3

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3API interface {
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

type Client struct {
	api S3API
}

func NewClient(api S3API) *Client {
	return &Client{api: api}
}

// UploadReport stores body at prefix+name in bucket and returns the
// resulting location.
func (c *Client) UploadReport(ctx context.Context, bucket, prefix, name string, body io.Reader) (Location, error) {
	loc := Location{Bucket: bucket, Key: ReportKey(prefix, name)}
	_, err := c.api.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(loc.Bucket),
		Key:         aws.String(loc.Key),
		Body:        body,
		ContentType: aws.String(contentType(name)),
	})
	if err != nil {
		return Location{}, fmt.Errorf("PutObject(%s): %w", loc, err)
	}
	return loc, nil
}

// ReportKey joins prefix and the base name of file into an object key.
func ReportKey(prefix, file string) string {
	name := path.Base(file)
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".csv":
		return "text/csv"
	default:
		return "text/plain"
	}
}
