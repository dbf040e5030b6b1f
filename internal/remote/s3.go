package remote

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Objects implements ObjectStore using the SDK transfer manager, which
// handles multipart uploads and honours ctx cancellation mid-transfer.
type S3Objects struct {
	uploader *manager.Uploader
}

func NewS3Objects(client manager.UploadAPIClient) *S3Objects {
	return &S3Objects{uploader: manager.NewUploader(client)}
}

func (s *S3Objects) Upload(ctx context.Context, bucket, key, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	out, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	if out.Location != "" {
		return out.Location, nil
	}
	// Older S3-compatible endpoints omit Location.
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key), nil
}
