package repository

import (
	"context"
	"errors"

	"lesson-scheduler/internal/domain/booking"
	"lesson-scheduler/internal/infra"
	"lesson-scheduler/internal/infra/db"
	"lesson-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

const createBookingQuery = `
	INSERT INTO bookings (trainer_id, client_id, package_id, start_time, end_time)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, trainerID uuid.UUID, req booking.Request) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingQuery,
		trainerID,
		req.ClientID(),
		req.PackageID(),
		req.StartTime(),
		req.EndTime(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const findBookingByIDQuery = `
	SELECT b.id, b.client_id, c.full_name, b.trainer_id, b.package_id,
	       b.start_time, b.end_time, b.created_at
	FROM bookings b
	JOIN clients c ON c.id = b.client_id
	WHERE b.id = $1
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var view queries.BookingView
	err := r.db.QueryRow(ctx, findBookingByIDQuery, id).Scan(
		&view.ID,
		&view.ClientID,
		&view.ClientName,
		&view.TrainerID,
		&view.PackageID,
		&view.StartTime,
		&view.EndTime,
		&view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}

	return &view, nil
}
