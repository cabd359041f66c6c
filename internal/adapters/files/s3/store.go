package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"pet-registry/internal/ports/files"
)

// Store sube las imágenes a un bucket S3. La referencia persistida es
// la misma key del objeto ("images/<uuid>.jpg").
type Store struct {
	uploader *s3manager.Uploader
	bucket   string
}

func New(region, bucket string) (*Store, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return &Store{
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
	}, nil
}

func (s *Store) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}
	return name, nil
}

var _ files.Store = (*Store)(nil)
