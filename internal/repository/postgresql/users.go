package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/file_catalog/internal/domain"
)

const TableUsers = "users"

type UsersRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUsersRepository(pool *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// UserByUsername returns domain.ErrNotFound when the user does not exist.
func (r *UsersRepository) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"id",
			"username",
			"password_hash",
			"created_at",
		).
		From(TableUsers).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, collectRowsError(err)
	}

	return user, nil
}

// UpsertUser creates the user or replaces its password hash.
func (r *UsersRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableUsers).
		Columns(
			"username",
			"password_hash",
		).
		Values(
			user.Username,
			user.PasswordHash,
		).
		Suffix(`ON CONFLICT (username) DO UPDATE SET
			password_hash = EXCLUDED.password_hash
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

// DeleteUsersExcept removes every user whose username is not in keep.
// With an empty keep list the whole table is cleared.
func (r *UsersRepository) DeleteUsersExcept(ctx context.Context, keep []string) (int64, error) {
	db := extractDB(ctx, r.pool)

	builder := r.qb.Delete(TableUsers)
	if len(keep) > 0 {
		builder = builder.Where(sq.NotEq{"username": keep})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}
