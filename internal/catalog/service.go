package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/file_catalog/internal/domain"
)

// MIMETypePDF is the only file type the catalog accepts.
const MIMETypePDF = "application/pdf"

type Service struct {
	log           *slog.Logger
	files         FilesRepository
	maxUploadSize int64
}

func NewService(log *slog.Logger, files FilesRepository, maxUploadSize int64) *Service {
	return &Service{
		log:           log,
		files:         files,
		maxUploadSize: maxUploadSize,
	}
}

type UploadInput struct {
	Name     string
	FileType string
	Size     int64
}

// Upload validates the submission and persists the outcome. A failed
// validation is not an error: the record is stored with StatusRejected
// and the reason, exactly like an accepted one.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*domain.File, error) {
	status, reason := s.validate(input)

	file := &domain.File{
		Name:     input.Name,
		FileType: input.FileType,
		Size:     input.Size,
		Status:   status,
		Reason:   reason,
	}

	if err := s.files.CreateFile(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	s.log.InfoContext(ctx, "upload recorded",
		slog.Int64("id", file.ID),
		slog.String("name", file.Name),
		slog.String("status", string(file.Status)),
	)

	return file, nil
}

func (s *Service) validate(input UploadInput) (domain.Status, string) {
	if input.FileType != MIMETypePDF {
		return domain.StatusRejected, fmt.Sprintf("invalid file type %q, only %q is allowed", input.FileType, MIMETypePDF)
	}

	if input.Size > s.maxUploadSize {
		return domain.StatusRejected, fmt.Sprintf("file size %d bytes exceeds the %d bytes limit", input.Size, s.maxUploadSize)
	}

	return domain.StatusAccepted, "File uploaded successfully"
}

func (s *Service) Files(ctx context.Context) ([]*domain.File, error) {
	files, err := s.files.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get files: %w", err)
	}

	return files, nil
}

// Delete removes the record with the given id, once. A repeated delete
// of the same id returns domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.files.DeleteFile(ctx, id); err != nil {
		return fmt.Errorf("failed to delete file %d: %w", id, err)
	}

	s.log.InfoContext(ctx, "file deleted", slog.Int64("id", id))

	return nil
}
