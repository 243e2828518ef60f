package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"duoChat/internal/enums"
	"duoChat/internal/errs"
	"duoChat/internal/interfaces/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManagerService_ResolveImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFiles := mocks.NewMockFileManager(ctrl)
	svc := NewFileManagerService(mockFiles, 1024)
	ctx := context.Background()

	tests := []struct {
		name      string
		image     string
		mockSetup  func()
		want       string
		wantPrefix string
		wantKind   errs.Kind
	}{
		{
			name:      "empty stays empty",
			image:     "",
			mockSetup: func() {},
			want:      "",
		},
		{
			name:      "http url passes through",
			image:     "https://cdn.example.com/a.png",
			mockSetup: func() {},
			want:      "https://cdn.example.com/a.png",
		},
		{
			name:  "data uri is uploaded",
			image: pngDataURI(),
			mockSetup: func() {
				mockFiles.EXPECT().
					UploadFile(ctx, gomock.Any(), gomock.Any(), int64(len(pngBytes)), "image/png", enums.FILE_BUCKET_MESSAGE_IMAGE).
					DoAndReturn(func(_ context.Context, name string, _ io.Reader, _ int64, _ string, _ string) (string, error) {
						assert.True(t, strings.HasPrefix(name, "owner-1/"))
						assert.True(t, strings.HasSuffix(name, ".png"))
						return "http://media/" + name, nil
					}).Times(1)
			},
			wantPrefix: "http://media/owner-1/",
		},
		{
			name:      "plain text is rejected",
			image:     "not an image",
			mockSetup: func() {},
			wantKind:  errs.KindValidation,
		},
		{
			name:      "data uri that is not an image",
			image:     "data:image/png;base64,aGVsbG8gd29ybGQ=",
			mockSetup: func() {},
			wantKind:  errs.KindValidation,
		},
		{
			name:  "upload failure",
			image: pngDataURI(),
			mockSetup: func() {
				mockFiles.EXPECT().
					UploadFile(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("connection refused")).Times(1)
			},
			wantKind: errs.KindExternalService,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			got, err := svc.ResolveImage(ctx, "owner-1", tc.image, enums.FILE_BUCKET_MESSAGE_IMAGE)
			if tc.wantKind != errs.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			if tc.wantPrefix != "" {
				assert.True(t, strings.HasPrefix(got, tc.wantPrefix), got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFileManagerService_ImageTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewFileManagerService(mocks.NewMockFileManager(ctrl), 8)

	_, err := svc.UploadDataURI(context.Background(), "owner", pngDataURI(), enums.FILE_BUCKET_USER_PROFILE)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindValidation))
	assert.ErrorIs(t, err, errs.ErrImageTooLarge)
}
