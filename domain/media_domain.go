package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessUploadMedia = "media upload processed"
	MessageSuccessGetMedia    = "success get media"
	MessageSuccessDeleteMedia = "media deleted successfully"

	MessageFailedUploadMedia = "failed to upload media"
	MessageFailedGetMedia    = "failed to get media"
	MessageFailedDeleteMedia = "failed to delete media"

	ErrMediaNotFound    = errors.New("media not found")
	ErrNoFilesUploaded  = errors.New("no files in upload request")
	ErrFileTooLarge     = errors.New("file exceeds the 10MB upload limit")
	ErrInvalidMediaType = errors.New("unsupported media type")
)

type (
	MediaResponse struct {
		ID               string    `json:"id"`
		Filename         string    `json:"filename"`
		OriginalFilename string    `json:"original_filename,omitempty"`
		PublicURL        string    `json:"public_url"`
		MimeType         string    `json:"mime_type,omitempty"`
		FileSize         int64     `json:"file_size,omitempty"`
		UploadedAt       time.Time `json:"uploaded_at"`
	}

	// MediaUploadResult reports one file of a batch. Failures are collected
	// here instead of aborting the sibling uploads.
	MediaUploadResult struct {
		Filename string `json:"filename"`
		URL      string `json:"url,omitempty"`
		Error    string `json:"error,omitempty"`
	}

	MediaUploadReport struct {
		Uploaded []MediaUploadResult `json:"uploaded"`
		Failed   []MediaUploadResult `json:"failed"`
	}
)
