package artifact_storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-builder/internal/config"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, _ := io.ReadAll(in.Body)
	args := m.Called(aws.ToString(in.Key), aws.ToString(in.ContentType), string(body))
	return &s3.PutObjectOutput{}, args.Error(0)
}

func (m *mockS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, args.Error(0)
}

func TestS3Adapter_Upload(t *testing.T) {
	api := new(mockS3)
	api.On("PutObject", "users/u/exports/r-classic.pdf", "application/pdf", "%PDF-1.7").Return(nil)

	a := &s3Adapter{client: api, bucket: "resumes", region: "eu-west-1"}
	url, err := a.Upload(context.Background(), strings.NewReader("%PDF-1.7"), "users/u/exports/r-classic.pdf", "application/pdf")

	require.NoError(t, err)
	assert.Equal(t, "https://resumes.s3.eu-west-1.amazonaws.com/users/u/exports/r-classic.pdf", url)
	api.AssertExpectations(t)
}

func TestS3Adapter_CustomEndpoint(t *testing.T) {
	api := new(mockS3)
	api.On("PutObject", "k.pdf", "application/pdf", "x").Return(nil)
	api.On("DeleteObject", "k.pdf").Return(errors.New("boom"))

	a := &s3Adapter{client: api, bucket: "b", endpoint: "http://minio:9000/"}
	url, err := a.Upload(context.Background(), strings.NewReader("x"), "k.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/b/k.pdf", url)

	assert.ErrorContains(t, a.Delete(context.Background(), "k.pdf"), "boom")
}

func TestSplitKey(t *testing.T) {
	folder, name := splitKey("users/42/exports/r-modern.pdf")
	assert.Equal(t, "users/42/exports", folder)
	assert.Equal(t, "r-modern.pdf", name)

	folder, name = splitKey("single.pdf")
	assert.Equal(t, "", folder)
	assert.Equal(t, "single.pdf", name)
}

func TestNewArtifactStore(t *testing.T) {
	var cfg config.Config
	cfg.Storage.Provider = "ftp"
	_, err := NewArtifactStore(context.Background(), cfg, logger.NewNopLogger())
	assert.ErrorContains(t, err, "unknown storage provider")

	cfg.Storage.Provider = "cloudinary"
	_, err = NewArtifactStore(context.Background(), cfg, logger.NewNopLogger())
	assert.Error(t, err)

	cfg.Storage.Provider = "S3"
	_, err = NewArtifactStore(context.Background(), cfg, logger.NewNopLogger())
	assert.ErrorContains(t, err, "bucket")
}
