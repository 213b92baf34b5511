package postgresql

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/file_catalog/internal/domain"
)

const TableFileUploads = "file_uploads"

type FilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewFilesRepository(pool *pgxpool.Pool) *FilesRepository {
	return &FilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateFile inserts the record and fills in the database-assigned
// id and uploaded_at timestamp.
func (r *FilesRepository) CreateFile(ctx context.Context, file *domain.File) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableFileUploads).
		Columns(
			"name",
			"file_type",
			"size",
			"status",
			"reason",
		).
		Values(
			file.Name,
			file.FileType,
			file.Size,
			file.Status,
			file.Reason,
		).
		Suffix("RETURNING id, uploaded_at").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	var (
		id         int64
		uploadedAt time.Time
	)
	if err := db.QueryRow(ctx, sql, args...).Scan(&id, &uploadedAt); err != nil {
		return scanRowError(err)
	}

	file.ID = id
	file.UploadedAt = uploadedAt

	return nil
}

// Files returns all records in insertion order.
func (r *FilesRepository) Files(ctx context.Context) ([]*domain.File, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"id",
			"name",
			"file_type",
			"size",
			"status",
			"reason",
			"uploaded_at",
		).
		From(TableFileUploads).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.File])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return files, nil
}

// DeleteFile removes the record with the given id.
// Returns domain.ErrNotFound when no such row exists.
func (r *FilesRepository) DeleteFile(ctx context.Context, id int64) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableFileUploads).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
