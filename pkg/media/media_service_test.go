package media

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMediaRepo struct {
	stored    []*entities.Media
	createErr error
	deleted   []string
}

func (f *fakeMediaRepo) CreateMedia(ctx context.Context, media *entities.Media) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.stored = append(f.stored, media)
	return nil
}

func (f *fakeMediaRepo) GetMediaByID(ctx context.Context, id string) (*entities.Media, error) {
	for _, m := range f.stored {
		if m.ID.String() == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMediaRepo) GetMedia(ctx context.Context) ([]*entities.Media, error) {
	return f.stored, nil
}

func (f *fakeMediaRepo) DeleteMedia(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeS3 struct {
	uploadErr error
	deleted   []string
	failOn    map[string]bool
}

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	if f.failOn[file.Filename] {
		return "", errors.New("upload refused")
	}
	return dir + "/" + fileName, nil
}

func (f *fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.test.amazonaws.com/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string { return link }

func fileHeader(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}
}

func TestUploadBatch_EmptyRequest(t *testing.T) {
	service := NewMediaService(&fakeMediaRepo{}, &fakeS3{})

	_, err := service.UploadBatch(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoFilesUploaded)
}

func TestUploadBatch_PartialFailure(t *testing.T) {
	repo := &fakeMediaRepo{}
	s3 := &fakeS3{failOn: map[string]bool{"broken.jpg": true}}
	service := NewMediaService(repo, s3)

	report, err := service.UploadBatch(context.Background(), []*multipart.FileHeader{
		fileHeader("hero.jpg", 1024),
		fileHeader("broken.jpg", 1024),
	})
	require.NoError(t, err)

	require.Len(t, report.Uploaded, 1)
	assert.Equal(t, "hero.jpg", report.Uploaded[0].Filename)
	assert.NotEmpty(t, report.Uploaded[0].URL)

	require.Len(t, report.Failed, 1)
	assert.Equal(t, "broken.jpg", report.Failed[0].Filename)
	assert.NotEmpty(t, report.Failed[0].Error)

	assert.Len(t, repo.stored, 1)
}

func TestUploadBatch_OversizedFile(t *testing.T) {
	service := NewMediaService(&fakeMediaRepo{}, &fakeS3{})

	report, err := service.UploadBatch(context.Background(), []*multipart.FileHeader{
		fileHeader("huge.jpg", 11*1024*1024),
	})
	require.NoError(t, err)

	assert.Empty(t, report.Uploaded)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, domain.ErrFileTooLarge.Error(), report.Failed[0].Error)
}

func TestUploadBatch_MetadataFailureCleansUpObject(t *testing.T) {
	repo := &fakeMediaRepo{createErr: errors.New("insert failed")}
	s3 := &fakeS3{}
	service := NewMediaService(repo, s3)

	report, err := service.UploadBatch(context.Background(), []*multipart.FileHeader{
		fileHeader("hero.jpg", 1024),
	})
	require.NoError(t, err)

	assert.Empty(t, report.Uploaded)
	assert.Len(t, report.Failed, 1)
	// the orphaned S3 object was removed
	assert.Len(t, s3.deleted, 1)
}

func TestDeleteMedia(t *testing.T) {
	record := &entities.Media{ID: uuid.New(), StoragePath: "media-library/hero.jpg"}
	repo := &fakeMediaRepo{stored: []*entities.Media{record}}
	s3 := &fakeS3{}
	service := NewMediaService(repo, s3)

	require.NoError(t, service.DeleteMedia(context.Background(), record.ID.String()))
	assert.Equal(t, []string{"media-library/hero.jpg"}, s3.deleted)
	assert.Equal(t, []string{record.ID.String()}, repo.deleted)
}

func TestDeleteMedia_NotFound(t *testing.T) {
	service := NewMediaService(&fakeMediaRepo{}, &fakeS3{})

	err := service.DeleteMedia(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrMediaNotFound)
}
