package services

import (
	"bytes"
	"context"
	"duoChat/internal/errs"
	"duoChat/internal/interfaces"
	"duoChat/internal/logger"
	"duoChat/internal/utils"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

type FileManagerService struct {
	fileManager   interfaces.FileManager
	maxImageBytes int64
}

func NewFileManagerService(fileManager interfaces.FileManager, maxImageBytes int64) *FileManagerService {
	return &FileManagerService{
		fileManager:   fileManager,
		maxImageBytes: maxImageBytes,
	}
}

// ResolveImage turns a client supplied image into a URL. Data URIs are
// uploaded under ownerID, http(s) URLs pass through and "" stays "".
func (fs *FileManagerService) ResolveImage(ctx context.Context, ownerID, image, bucketName string) (string, error) {
	switch {
	case image == "":
		return "", nil
	case utils.IsDataURI(image):
		return fs.UploadDataURI(ctx, ownerID, image, bucketName)
	case utils.IsHttpURL(image):
		return image, nil
	default:
		return "", errs.Validation(errs.ErrInvalidImage)
	}
}

// UploadDataURI decodes an inline image, checks its real content type and
// stores it as <owner>/<id><ext>.
func (fs *FileManagerService) UploadDataURI(ctx context.Context, ownerID, dataURI, bucketName string) (string, error) {
	parsed, err := utils.ParseDataURI(dataURI)
	if err != nil {
		return "", errs.Validation(errs.ErrInvalidImage)
	}
	if fs.maxImageBytes > 0 && int64(len(parsed.Data)) > fs.maxImageBytes {
		return "", errs.Validation(errs.ErrImageTooLarge)
	}

	mime := mimetype.Detect(parsed.Data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", errs.Validation(errs.ErrInvalidImage)
	}

	fileName := ownerID + "/" + utils.NewId() + mime.Extension()
	url, err := fs.fileManager.UploadFile(
		ctx,
		fileName,
		bytes.NewReader(parsed.Data),
		int64(len(parsed.Data)),
		mime.String(),
		bucketName,
	)
	if err != nil {
		logger.Error("image upload failed", zap.String("bucket", bucketName), zap.Error(err))
		return "", errs.ExternalService(errs.ErrUploadFailed)
	}
	return url, nil
}
