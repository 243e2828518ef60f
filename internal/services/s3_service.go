package services

import (
	"context"
	"duoChat/configs"
	"duoChat/internal/interfaces"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	pkgerrors "github.com/pkg/errors"
)

var _ interfaces.FileManager = (*S3Service)(nil)

// S3Service stores every logical bucket as a key prefix inside one S3 bucket.
type S3Service struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

func NewS3Service(ctx context.Context, config *configs.Config) (*S3Service, error) {
	region := config.Viper.GetString("s3.region")
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}

	accessKeyID := config.Viper.GetString("s3.access_key_id")
	if accessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID,
			config.Viper.GetString("s3.secret_access_key"),
			"",
		)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load aws config")
	}

	endpoint := config.Viper.GetString("s3.endpoint")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = config.Viper.GetBool("s3.use_path_style")
	})

	return &S3Service{
		client:        client,
		bucket:        config.Viper.GetString("s3.bucket"),
		region:        region,
		publicBaseURL: strings.TrimSuffix(config.Viper.GetString("s3.public_base_url"), "/"),
	}, nil
}

func (ss *S3Service) UploadFile(ctx context.Context, fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error) {
	key := bucketName + "/" + fileName
	_, err := ss.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(ss.bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(fileSize),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", pkgerrors.Wrap(err, "s3 put object")
	}
	return ss.GetPublicFileUrl(key), nil
}

func (ss *S3Service) GetPublicFileUrl(key string) string {
	if ss.publicBaseURL != "" {
		return ss.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", ss.bucket, ss.region, key)
}
