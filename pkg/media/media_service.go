package media

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/entities"
	"Recipe-Blog-Backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxFileSize = 10 * 1024 * 1024

type (
	MediaService interface {
		UploadBatch(ctx context.Context, files []*multipart.FileHeader) (domain.MediaUploadReport, error)
		GetMedia(ctx context.Context) ([]domain.MediaResponse, error)
		DeleteMedia(ctx context.Context, id string) error
	}

	mediaService struct {
		mediaRepository MediaRepository
		s3              storage.AwsS3
	}
)

func NewMediaService(mediaRepository MediaRepository, s3 storage.AwsS3) MediaService {
	return &mediaService{
		mediaRepository: mediaRepository,
		s3:              s3,
	}
}

// UploadBatch uploads each file independently. A failed file is reported in
// the aggregate result and never cancels its siblings.
func (s *mediaService) UploadBatch(ctx context.Context, files []*multipart.FileHeader) (domain.MediaUploadReport, error) {
	if len(files) == 0 {
		return domain.MediaUploadReport{}, domain.ErrNoFilesUploaded
	}

	report := domain.MediaUploadReport{
		Uploaded: []domain.MediaUploadResult{},
		Failed:   []domain.MediaUploadResult{},
	}

	for _, file := range files {
		url, err := s.uploadOne(ctx, file)
		if err != nil {
			log.Warnf("media upload failed for %s: %v", file.Filename, err)
			report.Failed = append(report.Failed, domain.MediaUploadResult{
				Filename: file.Filename,
				Error:    err.Error(),
			})
			continue
		}
		report.Uploaded = append(report.Uploaded, domain.MediaUploadResult{
			Filename: file.Filename,
			URL:      url,
		})
	}

	return report, nil
}

func (s *mediaService) uploadOne(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > maxFileSize {
		return "", domain.ErrFileTooLarge
	}

	fileName := fmt.Sprintf("%d-%s%s",
		time.Now().UnixMilli(),
		uuid.New().String()[:8],
		filepath.Ext(file.Filename),
	)

	objectKey, err := s.s3.UploadFile(fileName, file, "media-library", storage.AllowImage...)
	if err != nil {
		return "", err
	}
	publicURL := s.s3.GetPublicLinkKey(objectKey)

	record := &entities.Media{
		ID:               uuid.New(),
		Filename:         fileName,
		OriginalFilename: file.Filename,
		StoragePath:      objectKey,
		PublicURL:        publicURL,
		MimeType:         file.Header.Get("Content-Type"),
		FileSize:         file.Size,
		UploadedAt:       time.Now(),
	}
	if err := s.mediaRepository.CreateMedia(ctx, record); err != nil {
		// keep the bucket consistent with the metadata table
		_ = s.s3.DeleteFile(objectKey)
		return "", err
	}

	return publicURL, nil
}

func (s *mediaService) GetMedia(ctx context.Context) ([]domain.MediaResponse, error) {
	records, err := s.mediaRepository.GetMedia(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.MediaResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, domain.MediaResponse{
			ID:               record.ID.String(),
			Filename:         record.Filename,
			OriginalFilename: record.OriginalFilename,
			PublicURL:        record.PublicURL,
			MimeType:         record.MimeType,
			FileSize:         record.FileSize,
			UploadedAt:       record.UploadedAt,
		})
	}
	return responses, nil
}

func (s *mediaService) DeleteMedia(ctx context.Context, id string) error {
	record, err := s.mediaRepository.GetMediaByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMediaNotFound
		}
		return err
	}

	if err := s.s3.DeleteFile(record.StoragePath); err != nil {
		return err
	}
	return s.mediaRepository.DeleteMedia(ctx, id)
}
