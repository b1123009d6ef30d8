package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/disintegration/imaging"
)

// ErrS3NotConfigured is returned when an upload is requested without a bucket
var ErrS3NotConfigured = errors.New("output: S3 bucket not configured")

var logger = log.New("output")

// S3Config holds the settings of an S3 compatible object store
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string // Empty uses the AWS endpoint for Region
	Region    string
	Bucket    string
	Prefix    string // Key prefix for uploaded renders
}

// S3ConfigFromEnv reads S3_ACCESS_KEY, S3_SECRET_KEY, S3_ENDPOINT, S3_REGION,
// S3_BUCKET and S3_PREFIX from the environment
func S3ConfigFromEnv() S3Config {
	return S3Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    os.Getenv("S3_BUCKET"),
		Prefix:    os.Getenv("S3_PREFIX"),
	}
}

// Enabled reports whether uploads are configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// S3Uploader stores rendered images in a bucket as PNG
type S3Uploader struct {
	client s3iface.S3API
	config S3Config
}

// NewS3Uploader creates an uploader with static credentials from config
func NewS3Uploader(config S3Config) (*S3Uploader, error) {
	if !config.Enabled() {
		return nil, ErrS3NotConfigured
	}

	awsConfig := &aws.Config{
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if config.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, "")
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return newS3UploaderWithClient(s3.New(sess), config), nil
}

func newS3UploaderWithClient(client s3iface.S3API, config S3Config) *S3Uploader {
	return &S3Uploader{client: client, config: config}
}

// Key returns the object key an image named name is stored under
func (u *S3Uploader) Key(name string) string {
	return path.Join(u.config.Prefix, name)
}

// Upload encodes img as PNG and stores it under Key(name)
func (u *S3Uploader) Upload(ctx context.Context, name string, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}

	key := u.Key(name)
	size := int64(buf.Len())
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	logger.Infof("uploaded %s to bucket %s (%d bytes)", key, u.config.Bucket, size)
	return key, nil
}
