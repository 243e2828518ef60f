package services

import (
	"context"
	"duoChat/configs"
	"duoChat/internal/enums"
	"duoChat/internal/interfaces"
	"duoChat/internal/logger"
	"fmt"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ interfaces.FileManager = (*MinioService)(nil)

type MinioService struct {
	minioClient *minio.Client
	config      *configs.Config
}

var (
	minioService *MinioService
	minioOnce    sync.Once
)

func NewMinioService(config *configs.Config) *MinioService {
	minioOnce.Do(func() {
		endpoint := config.Viper.GetString("minio.endpoint")
		accessKeyID := config.Viper.GetString("minio.access_key_id")
		secretAccessKey := config.Viper.GetString("minio.secret_access_key")
		useSSL := config.Viper.GetBool("minio.use_ssl")

		minioClient, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
			Secure: useSSL,
		})
		if err != nil {
			logger.Fatal("Failed to create minio client", zap.Error(err))
		}

		for _, bucketName := range enums.FILE_BUCKETS {
			if err := ensureBucket(context.Background(), minioClient, bucketName); err != nil {
				logger.Fatal("Failed to prepare bucket", zap.String("bucket", bucketName), zap.Error(err))
			}
		}

		minioService = &MinioService{
			minioClient: minioClient,
			config:      config,
		}
	})
	return minioService
}

func ensureBucket(ctx context.Context, client *minio.Client, bucketName string) error {
	err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err == nil {
		logger.Info("Bucket created", zap.String("bucket", bucketName))
		return setPublicRead(ctx, client, bucketName)
	}
	exists, errBucketExists := client.BucketExists(ctx, bucketName)
	if errBucketExists == nil && exists {
		logger.Debug("Bucket already exists", zap.String("bucket", bucketName))
		return nil
	}
	return err
}

// Uploaded media is addressed by plain URLs, so buckets allow anonymous reads.
func setPublicRead(ctx context.Context, client *minio.Client, bucketName string) error {
	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucketName)
	return client.SetBucketPolicy(ctx, bucketName, policy)
}

func (ms *MinioService) UploadFile(ctx context.Context, fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error) {
	info, err := ms.minioClient.PutObject(ctx, bucketName, fileName, file, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", pkgerrors.Wrap(err, "minio put object")
	}
	return ms.GetPublicFileUrl(bucketName, info.Key), nil
}

func (ms *MinioService) GetPublicFileUrl(bucketName, fileKey string) string {
	scheme := "http"
	if ms.config.Viper.GetBool("minio.use_ssl") {
		scheme = "https"
	}
	externalEndpoint := ms.config.Viper.GetString("minio.external_endpoint")
	return fmt.Sprintf("%s://%s/%s/%s", scheme, externalEndpoint, bucketName, fileKey)
}
