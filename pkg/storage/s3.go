package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// VideosConfig holds S3 client configuration for the session video bucket.
type VideosConfig struct {
	Region               string
	AccessKeyID          string
	SecretAccessKey      string
	Bucket               string
	PresignExpireMinutes int
}

// Videos serves recorded session videos from S3 via presigned playback URLs.
// The bucket is private; the only way viewers reach a video is a short-lived
// presigned GET issued after a validated registration.
type Videos struct {
	client  *s3.Client
	presign *s3.PresignClient
	cfg     VideosConfig
	logger  *zap.Logger
}

// NewVideos creates the S3 video storage client using credentials from
// config or the environment (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY).
func NewVideos(ctx context.Context, cfg VideosConfig, logger *zap.Logger) (*Videos, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	accessKey := cfg.AccessKeyID
	secretKey := cfg.SecretAccessKey
	if accessKey == "" || secretKey == "" {
		accessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		secretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	}
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	} else {
		logger.Warn("S3 videos client using default credential chain")
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)
	logger.Info("S3 videos client ready",
		zap.String("region", cfg.Region), zap.String("bucket", cfg.Bucket))
	return &Videos{
		client:  client,
		presign: s3.NewPresignClient(client),
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// PresignPlayback returns a short-lived GET URL for a video object key.
func (v *Videos) PresignPlayback(ctx context.Context, key string) (string, error) {
	expire := time.Duration(v.cfg.PresignExpireMinutes) * time.Minute
	if expire <= 0 {
		expire = 15 * time.Minute
	}
	req, err := v.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(v.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expire))
	if err != nil {
		return "", fmt.Errorf("presign get object: %w", err)
	}
	return req.URL, nil
}
