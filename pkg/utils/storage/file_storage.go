package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var s3Client *s3.Client

func InitStorage(region string) error {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	return nil
}

func bucketName() string {
	if name := os.Getenv("AWS_BUCKET_NAME"); name != "" {
		return name
	}
	return "storefront-previews"
}

func region() string {
	if r := os.Getenv("AWS_REGION"); r != "" {
		return r
	}
	return "eu-central-1"
}

// UploadPreview stores an already-processed preview image under
// <kind>/<record id>/<unique name> and returns its public URL.
func UploadPreview(kind string, recordID uint, buf *bytes.Buffer, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%d/%d-%s.webp", kind, recordID, time.Now().Unix(), uuid.New().String())

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucketName()),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload to S3: %v", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucketName(), region(), key), nil
}

// DeletePreview removes a previously uploaded preview by its public URL.
func DeletePreview(imageURL string) error {
	// URL'den key'i çıkar
	parts := strings.SplitN(imageURL, ".amazonaws.com/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("unrecognized storage URL: %s", imageURL)
	}

	_, err := s3Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName()),
		Key:    aws.String(parts[1]),
	})

	return err
}
