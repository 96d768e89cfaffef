package repository

import (
	"context"
	"errors"

	"lesson-scheduler/internal/domain/user"
	"lesson-scheduler/internal/infra"
	"lesson-scheduler/internal/infra/db"
	"lesson-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const findUserByEmailQuery = `
	SELECT id, email, role, trainer_id, is_active, password_hash
	FROM users
	WHERE email = $1
`

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailQuery, email.Value()).Scan(
		&view.ID,
		&view.Email,
		&view.Role,
		&view.TrainerID,
		&view.IsActive,
		&hash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, hash, nil
}

const findUserByIDQuery = `
	SELECT id, email, role, trainer_id, is_active
	FROM users
	WHERE id = $1
`

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findUserByIDQuery, id).Scan(
		&view.ID,
		&view.Email,
		&view.Role,
		&view.TrainerID,
		&view.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}

	return &view, nil
}

const updateLastLoginQuery = `
	UPDATE users SET last_login = now() WHERE id = $1
`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, updateLastLoginQuery, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
