package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"lesson-scheduler/internal/domain/booking"
	"lesson-scheduler/internal/domain/lessonpackage"
	"lesson-scheduler/internal/infra"
	"lesson-scheduler/internal/pkg/errs"
	"lesson-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrClientNotFound     = errs.New("client not found")
	ErrPackageNotFound    = errs.New("package not found")
	ErrNoPackageAvailable = errs.New("no package available for the requested type")
	ErrPackageExhausted   = errs.New("package has no lessons remaining")
	ErrInvalidBooking     = errs.New("invalid booking request")
	ErrBookingInFlight    = errs.New("booking already in progress")
)

type BookLessonParams struct {
	TrainerID uuid.UUID
	ClientID  uuid.UUID
	StartTime int64 // epoch seconds
	EndTime   int64 // epoch seconds
	// PackageID pins an explicit instance; when nil the allocation policy
	// picks one of PackageType.
	PackageID   *uuid.UUID
	PackageType *lessonpackage.Type
}

type BookingCommands interface {
	BookLesson(ctx context.Context, params BookLessonParams) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	clientRepo     ClientRepository
	packageRepo    PackageRepository
	bookingRepo    BookingRepository
	bookingQueries queries.BookingQueries
	db             *pgxpool.Pool

	// one flow per client: its Booking state is the single-flight latch, and
	// its generation counter drops a package listing superseded by a newer
	// request for the same client
	mu    sync.Mutex
	flows map[uuid.UUID]*booking.Flow
}

func NewBookingCommands(
	clientRepo ClientRepository,
	packageRepo PackageRepository,
	bookingRepo BookingRepository,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
) BookingCommands {
	return &bookingCommandsImpl{
		clientRepo:     clientRepo,
		packageRepo:    packageRepo,
		bookingRepo:    bookingRepo,
		bookingQueries: bookingQueries,
		db:             db,
		flows:          make(map[uuid.UUID]*booking.Flow),
	}
}

// BookLesson books a lesson against one of the client's prepaid packages,
// driving the client's booking flow through client selection, package load,
// selection and the single-flight Booking state. Success is the committed
// transaction confirmed by a read-after-write fetch of the stored booking,
// not a timer.
func (b *bookingCommandsImpl) BookLesson(ctx context.Context, params BookLessonParams) (*queries.BookingView, error) {
	flow := b.flowFor(params.ClientID)

	generation := flow.SelectClient(params.ClientID)
	if !flow.BeginPackagesLoad(generation) {
		return nil, ErrBookingInFlight
	}

	if _, err := b.clientRepo.FindByID(ctx, params.ClientID); err != nil {
		flow.FailPackages(generation)
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, errs.Mark(err, ErrClientNotFound)
	}

	if err := b.loadPackages(ctx, flow, generation, params.ClientID); err != nil {
		return nil, err
	}

	if err := b.selectPackage(flow, params); err != nil {
		return nil, err
	}

	start := timeFromEpoch(params.StartTime)
	end := timeFromEpoch(params.EndTime)

	if err := flow.BeginBooking(start, end); err != nil {
		if errors.Is(err, booking.ErrBookingInFlight) {
			return nil, ErrBookingInFlight
		}
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	req, err := flow.BuildRequest(start, end)
	if err != nil {
		flow.CompleteBooking(err)
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	bookingID, txErr := b.executeBookingTransaction(ctx, params.TrainerID, req)
	flow.CompleteBooking(txErr)
	if txErr != nil {
		return nil, txErr
	}

	view, err := b.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) flowFor(clientID uuid.UUID) *booking.Flow {
	b.mu.Lock()
	defer b.mu.Unlock()

	f, ok := b.flows[clientID]
	if !ok {
		f = booking.NewFlow()
		b.flows[clientID] = f
	}
	return f
}

func (b *bookingCommandsImpl) loadPackages(ctx context.Context, flow *booking.Flow, generation uint64, clientID uuid.UUID) error {
	snapshots, err := b.packageRepo.ListByClient(ctx, clientID)
	if err != nil {
		flow.FailPackages(generation)
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	packages := make([]lessonpackage.LessonPackage, 0, len(snapshots))
	for _, s := range snapshots {
		packages = append(packages, lessonpackage.LessonPackage{
			ID:               s.ID,
			ClientID:         s.ClientID,
			Type:             lessonpackage.Type(s.PackageType),
			LessonsRemaining: s.LessonsRemaining,
			PurchaseDate:     s.PurchaseDate,
			ExpirationDate:   s.ExpirationDate,
			Expired:          s.IsExpired,
		})
	}

	if !flow.ApplyPackages(generation, packages) {
		return ErrBookingInFlight
	}
	return nil
}

func (b *bookingCommandsImpl) selectPackage(flow *booking.Flow, params BookLessonParams) error {
	if params.PackageID != nil {
		for _, p := range flow.Packages() {
			if p.ID != *params.PackageID {
				continue
			}
			if !p.Consumable() {
				return ErrPackageExhausted
			}
			if !flow.SelectPackage(p.ID) {
				return ErrBookingInFlight
			}
			return nil
		}
		return ErrPackageNotFound
	}

	requestedType := lessonpackage.TypePrivate
	if params.PackageType != nil {
		requestedType = *params.PackageType
	}
	flow.SetRequestedType(requestedType)

	if flow.SelectedPackageID() == uuid.Nil {
		return ErrNoPackageAvailable
	}
	return nil
}

func (b *bookingCommandsImpl) executeBookingTransaction(ctx context.Context, trainerID uuid.UUID, req booking.Request) (uuid.UUID, error) {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	bookingID, err := b.bookingRepo.Create(ctx, tx, trainerID, req)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := b.packageRepo.Debit(ctx, tx, req.PackageID()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrPackageExhausted
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return uuid.Nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}
	return bookingID, nil
}

func timeFromEpoch(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
