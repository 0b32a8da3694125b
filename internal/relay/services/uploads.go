package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/relay/config"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// Keys are classified later by basename alone, so the layout must keep
// "task" out of plain ring picture names.
const uploadTimestampLayout = "20060102150405"

// UploadService hands the camera presigned PUT URLs so picture bytes go
// straight to the object store without passing through the relay.
type UploadService struct {
	config *config.Config
	now    func() time.Time
}

func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{config: cfg, now: time.Now}
}

// RingObjectKey builds the storage key for a doorbell ring picture,
// e.g. "pictures/20180327123000.jpg".
func (s *UploadService) RingObjectKey() string {
	return fmt.Sprintf("pictures/%s.jpg", s.now().UTC().Format(uploadTimestampLayout))
}

// TaskObjectKey builds the storage key for a picture-task fulfillment,
// e.g. "pictures/task_20180327123000_42.jpg". The task ID goes after the
// last underscore so ingestion can recover it.
func (s *UploadService) TaskObjectKey(taskID string) string {
	return fmt.Sprintf("pictures/task_%s_%s.jpg", s.now().UTC().Format(uploadTimestampLayout), taskID)
}

func (s *UploadService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// GetPresignedPutURL signs a PUT for the given key.
func (s *UploadService) GetPresignedPutURL(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// PresignRingUpload reserves a key for a ring picture and signs a PUT for it.
func (s *UploadService) PresignRingUpload(ctx context.Context) (string, string, error) {
	key := s.RingObjectKey()
	url, err := s.GetPresignedPutURL(ctx, key)
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}

// PresignTaskUpload reserves a key for a task fulfillment picture and signs
// a PUT for it.
func (s *UploadService) PresignTaskUpload(ctx context.Context, taskID string) (string, string, error) {
	if taskID == "" {
		return "", "", common.ErrEmptyIdentifier
	}

	key := s.TaskObjectKey(taskID)
	url, err := s.GetPresignedPutURL(ctx, key)
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}
