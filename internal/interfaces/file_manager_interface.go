package interfaces

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mocks/mock_file_manager.go -package=mocks duoChat/internal/interfaces FileManager

// FileManager stores a file on the media host and returns its public URL.
type FileManager interface {
	UploadFile(ctx context.Context, fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error)
}
