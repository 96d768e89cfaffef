//go:build unit

package commands_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"lesson-scheduler/internal/domain/lessonpackage"
	"lesson-scheduler/internal/infra"
	"lesson-scheduler/internal/usecase/commands"
	commandsmock "lesson-scheduler/tests/mock/commands"
	queriesmock "lesson-scheduler/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// The happy path runs a pgx transaction and is covered by the e2e suite;
// these tests pin down the decision points before the transaction begins.
type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	clientRepo     *commandsmock.MockClientRepository
	packageRepo    *commandsmock.MockPackageRepository
	bookingRepo    *commandsmock.MockBookingRepository
	bookingQueries *queriesmock.MockBookingQueries
	commands       commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.clientRepo = commandsmock.NewMockClientRepository(s.mockCtrl)
	s.packageRepo = commandsmock.NewMockPackageRepository(s.mockCtrl)
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.bookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.commands = commands.NewBookingCommands(s.clientRepo, s.packageRepo, s.bookingRepo, s.bookingQueries, nil)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func baseParams(clientID uuid.UUID) commands.BookLessonParams {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return commands.BookLessonParams{
		TrainerID: uuid.New(),
		ClientID:  clientID,
		StartTime: start.Unix(),
		EndTime:   start.Add(time.Hour).Unix(),
	}
}

func consumableSnapshot(clientID uuid.UUID) commands.PackageSnapshot {
	return commands.PackageSnapshot{
		ID:               uuid.New(),
		ClientID:         clientID,
		PackageType:      "private",
		LessonsRemaining: 3,
		PurchaseDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *BookingCommandsTestSuite) TestBookLesson() {
	s.Run("error: unknown client", func() {
		clientID := uuid.New()
		s.clientRepo.EXPECT().
			FindByID(gomock.Any(), clientID).
			Return(nil, infra.WrapRepoErr("client not found", nil, infra.KindNotFound))

		_, err := s.commands.BookLesson(context.Background(), baseParams(clientID))

		s.ErrorIs(err, commands.ErrClientNotFound)
	})

	s.Run("error: no package of the requested type", func() {
		clientID := uuid.New()
		s.clientRepo.EXPECT().
			FindByID(gomock.Any(), clientID).
			Return(&commands.ClientSnapshot{ID: clientID, FullName: "山田 太郎"}, nil)
		s.packageRepo.EXPECT().
			ListByClient(gomock.Any(), clientID).
			Return(nil, nil)

		_, err := s.commands.BookLesson(context.Background(), baseParams(clientID))

		s.ErrorIs(err, commands.ErrNoPackageAvailable)
	})

	s.Run("error: pinned package does not belong to the client", func() {
		clientID := uuid.New()
		s.clientRepo.EXPECT().
			FindByID(gomock.Any(), clientID).
			Return(&commands.ClientSnapshot{ID: clientID}, nil)
		s.packageRepo.EXPECT().
			ListByClient(gomock.Any(), clientID).
			Return([]commands.PackageSnapshot{consumableSnapshot(clientID)}, nil)

		params := baseParams(clientID)
		unknown := uuid.New()
		params.PackageID = &unknown

		_, err := s.commands.BookLesson(context.Background(), params)

		s.ErrorIs(err, commands.ErrPackageNotFound)
	})

	s.Run("error: pinned package is exhausted", func() {
		clientID := uuid.New()
		exhausted := consumableSnapshot(clientID)
		exhausted.LessonsRemaining = 0

		s.clientRepo.EXPECT().
			FindByID(gomock.Any(), clientID).
			Return(&commands.ClientSnapshot{ID: clientID}, nil)
		s.packageRepo.EXPECT().
			ListByClient(gomock.Any(), clientID).
			Return([]commands.PackageSnapshot{exhausted}, nil)

		params := baseParams(clientID)
		params.PackageID = &exhausted.ID

		_, err := s.commands.BookLesson(context.Background(), params)

		s.ErrorIs(err, commands.ErrPackageExhausted)
	})

	s.Run("error: requested type has only expired packages", func() {
		clientID := uuid.New()
		expired := consumableSnapshot(clientID)
		expired.IsExpired = true

		s.clientRepo.EXPECT().
			FindByID(gomock.Any(), clientID).
			Return(&commands.ClientSnapshot{ID: clientID}, nil)
		s.packageRepo.EXPECT().
			ListByClient(gomock.Any(), clientID).
			Return([]commands.PackageSnapshot{expired}, nil)

		params := baseParams(clientID)
		private := lessonpackage.TypePrivate
		params.PackageType = &private

		_, err := s.commands.BookLesson(context.Background(), params)

		s.ErrorIs(err, commands.ErrNoPackageAvailable)
	})

	s.Run("error: superseded by a newer booking for the same client", func() {
		clientID := uuid.New()

		s.clientRepo.EXPECT().
			FindByID(gomock.Any(), clientID).
			Return(&commands.ClientSnapshot{ID: clientID}, nil).
			Times(2)

		entered := make(chan struct{})
		release := make(chan struct{})
		var calls atomic.Int32
		s.packageRepo.EXPECT().
			ListByClient(gomock.Any(), clientID).
			DoAndReturn(func(context.Context, uuid.UUID) ([]commands.PackageSnapshot, error) {
				if calls.Add(1) == 1 {
					close(entered)
					<-release
				}
				return []commands.PackageSnapshot{consumableSnapshot(clientID)}, nil
			}).
			Times(2)

		firstErr := make(chan error, 1)
		go func() {
			_, err := s.commands.BookLesson(context.Background(), baseParams(clientID))
			firstErr <- err
		}()
		<-entered

		// a second request for the same client arrives while the first is
		// still listing packages; it advances the client's flow generation
		params := baseParams(clientID)
		params.EndTime = params.StartTime
		_, err := s.commands.BookLesson(context.Background(), params)
		s.ErrorIs(err, commands.ErrInvalidBooking)

		// the first request's listing is now stale and must not proceed
		close(release)
		s.ErrorIs(<-firstErr, commands.ErrBookingInFlight)
	})

	s.Run("error: inverted interval is rejected before any write", func() {
		clientID := uuid.New()
		s.clientRepo.EXPECT().
			FindByID(gomock.Any(), clientID).
			Return(&commands.ClientSnapshot{ID: clientID}, nil)
		s.packageRepo.EXPECT().
			ListByClient(gomock.Any(), clientID).
			Return([]commands.PackageSnapshot{consumableSnapshot(clientID)}, nil)

		params := baseParams(clientID)
		params.EndTime = params.StartTime

		_, err := s.commands.BookLesson(context.Background(), params)

		s.ErrorIs(err, commands.ErrInvalidBooking)
	})
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}
