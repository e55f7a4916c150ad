package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Service archives generated export files, locally and optionally to S3.
type Service struct {
	s3Client  *s3.Client
	bucket    string
	localPath string
}

// Config holds export storage configuration
type Config struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	S3Bucket           string
	LocalPath          string
}

// NewService creates a new storage service. S3 archival is active only
// when a bucket is configured; otherwise exports stay on local disk.
func NewService(cfg Config) (*Service, error) {
	if err := os.MkdirAll(cfg.LocalPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	svc := &Service{
		bucket:    cfg.S3Bucket,
		localPath: cfg.LocalPath,
	}

	if cfg.S3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.AWSRegion),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKeyID,
				cfg.AWSSecretAccessKey,
				"",
			)),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		svc.s3Client = s3.NewFromConfig(awsCfg)
		log.Printf("✅ Export archival to s3://%s enabled", cfg.S3Bucket)
	}

	return svc, nil
}

// Archive writes an export file to local disk and, when configured,
// uploads a dated copy to S3. Returns the local path.
func (s *Service) Archive(ctx context.Context, filename string, data []byte) (string, error) {
	localPath := filepath.Join(s.localPath, filename)
	if err := os.WriteFile(localPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	if s.s3Client != nil {
		key := fmt.Sprintf("exports/%s/%s", time.Now().UTC().Format("2006/01"), filename)
		_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
			Body:   bytes.NewReader(data),
		})
		if err != nil {
			// Archival is best-effort; the caller already has the bytes.
			log.Printf("⚠️ Failed to archive export to S3: %v", err)
		} else {
			log.Printf("✅ Export archived to s3://%s/%s", s.bucket, key)
		}
	}

	return localPath, nil
}
