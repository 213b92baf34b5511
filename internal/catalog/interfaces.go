package catalog

import (
	"context"

	"github.com/kurochkinivan/file_catalog/internal/domain"
)

type FilesRepository interface {
	CreateFile(ctx context.Context, file *domain.File) error
	Files(ctx context.Context) ([]*domain.File, error)
	DeleteFile(ctx context.Context, id int64) error
}
