package entities

import (
	"time"

	"github.com/google/uuid"
)

type Media struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename,omitempty"`
	StoragePath      string    `json:"storage_path"`
	PublicURL        string    `json:"public_url"`
	MimeType         string    `json:"mime_type,omitempty"`
	FileSize         int64     `json:"file_size,omitempty"`
	UploadedAt       time.Time `gorm:"type:timestamp;default:now()" json:"uploaded_at"`
}
