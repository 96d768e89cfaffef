//go:build unit

package booking_test

import (
	"errors"
	"testing"
	"time"

	"lesson-scheduler/internal/domain/booking"
	"lesson-scheduler/internal/domain/lessonpackage"
	"lesson-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	slotStart = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	slotEnd   = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
)

func readyFlow(t *testing.T) (*booking.Flow, uuid.UUID) {
	t.Helper()

	flow := booking.NewFlow()
	clientID := uuid.New()
	gen := flow.SelectClient(clientID)
	require.True(t, flow.BeginPackagesLoad(gen))

	pkg := builder.NewPackageBuilder().Build()
	require.True(t, flow.ApplyPackages(gen, []lessonpackage.LessonPackage{pkg}))
	require.Equal(t, booking.StatePackageSelected, flow.State())
	return flow, pkg.ID
}

func TestFlowTransitions(t *testing.T) {
	t.Run("クライアント選択からパッケージ選択まで", func(t *testing.T) {
		flow := booking.NewFlow()
		assert.Equal(t, booking.StateIdle, flow.State())

		gen := flow.SelectClient(uuid.New())
		assert.Equal(t, booking.StateClientSelected, flow.State())

		require.True(t, flow.BeginPackagesLoad(gen))
		assert.Equal(t, booking.StatePackagesLoading, flow.State())

		pkg := builder.NewPackageBuilder().Build()
		require.True(t, flow.ApplyPackages(gen, []lessonpackage.LessonPackage{pkg}))
		assert.Equal(t, booking.StatePackageSelected, flow.State())
		assert.Equal(t, pkg.ID, flow.SelectedPackageID())
	})

	t.Run("該当パッケージなしならPackagesReady止まり", func(t *testing.T) {
		flow := booking.NewFlow()
		gen := flow.SelectClient(uuid.New())
		require.True(t, flow.BeginPackagesLoad(gen))

		require.True(t, flow.ApplyPackages(gen, nil))

		assert.Equal(t, booking.StatePackagesReady, flow.State())
		assert.Equal(t, uuid.Nil, flow.SelectedPackageID())
	})

	t.Run("タイプ変更で再選択される", func(t *testing.T) {
		flow := booking.NewFlow()
		gen := flow.SelectClient(uuid.New())
		require.True(t, flow.BeginPackagesLoad(gen))

		private := builder.NewPackageBuilder().Build()
		classPass := builder.NewPackageBuilder().WithType(lessonpackage.TypeClassPass).Build()
		require.True(t, flow.ApplyPackages(gen, []lessonpackage.LessonPackage{private, classPass}))
		require.Equal(t, private.ID, flow.SelectedPackageID())

		flow.SetRequestedType(lessonpackage.TypeClassPass)

		assert.Equal(t, classPass.ID, flow.SelectedPackageID())
	})

	t.Run("明示指定でポリシーの選択を上書きできる", func(t *testing.T) {
		flow := booking.NewFlow()
		gen := flow.SelectClient(uuid.New())
		require.True(t, flow.BeginPackagesLoad(gen))

		older := builder.NewPackageBuilder().Build()
		newer := builder.NewPackageBuilder().
			WithPurchaseDate(older.PurchaseDate.AddDate(0, 1, 0)).
			Build()
		require.True(t, flow.ApplyPackages(gen, []lessonpackage.LessonPackage{older, newer}))
		require.Equal(t, older.ID, flow.SelectedPackageID())

		assert.True(t, flow.SelectPackage(newer.ID))
		assert.Equal(t, newer.ID, flow.SelectedPackageID())
		assert.Equal(t, booking.StatePackageSelected, flow.State())

		// unknown IDs leave the selection untouched
		assert.False(t, flow.SelectPackage(uuid.New()))
		assert.Equal(t, newer.ID, flow.SelectedPackageID())
	})

	t.Run("予約成功でIdleへ戻る", func(t *testing.T) {
		flow, _ := readyFlow(t)

		require.NoError(t, flow.BeginBooking(slotStart, slotEnd))
		assert.Equal(t, booking.StateBooking, flow.State())

		flow.CompleteBooking(nil)

		assert.Equal(t, booking.StateIdle, flow.State())
		assert.Equal(t, uuid.Nil, flow.ClientID())
	})

	t.Run("予約失敗でErrorへ、Dismissで復帰", func(t *testing.T) {
		flow, _ := readyFlow(t)
		require.NoError(t, flow.BeginBooking(slotStart, slotEnd))

		flow.CompleteBooking(errors.New("write failed"))
		assert.Equal(t, booking.StateError, flow.State())

		flow.Dismiss()
		assert.Equal(t, booking.StateIdle, flow.State())
	})
}

func TestFlowStaleFetchDiscard(t *testing.T) {
	t.Run("古い世代のフェッチ結果は無視される", func(t *testing.T) {
		flow := booking.NewFlow()
		clientA := uuid.New()
		clientB := uuid.New()

		genA := flow.SelectClient(clientA)
		require.True(t, flow.BeginPackagesLoad(genA))

		// client B selected while A's fetch is still in flight
		genB := flow.SelectClient(clientB)
		require.True(t, flow.BeginPackagesLoad(genB))

		pkgForB := builder.NewPackageBuilder().Build()
		require.True(t, flow.ApplyPackages(genB, []lessonpackage.LessonPackage{pkgForB}))

		// A's fetch resolves late and must not overwrite B's state
		pkgForA := builder.NewPackageBuilder().Build()
		assert.False(t, flow.ApplyPackages(genA, []lessonpackage.LessonPackage{pkgForA}))

		assert.Equal(t, clientB, flow.ClientID())
		assert.Equal(t, pkgForB.ID, flow.SelectedPackageID())
	})

	t.Run("フェッチ失敗で空リスト扱い", func(t *testing.T) {
		flow := booking.NewFlow()
		gen := flow.SelectClient(uuid.New())
		require.True(t, flow.BeginPackagesLoad(gen))

		require.True(t, flow.FailPackages(gen))

		assert.Equal(t, booking.StatePackagesReady, flow.State())
		assert.Empty(t, flow.Packages())
	})
}

func TestFlowSingleFlight(t *testing.T) {
	flow, _ := readyFlow(t)

	require.NoError(t, flow.BeginBooking(slotStart, slotEnd))

	err := flow.BeginBooking(slotStart, slotEnd)
	assert.ErrorIs(t, err, booking.ErrBookingInFlight)

	// in-flight booking also blocks client switches and CanBook
	assert.False(t, flow.CanBook(slotStart, slotEnd))
	before := flow.ClientID()
	flow.SelectClient(uuid.New())
	assert.Equal(t, before, flow.ClientID())
}

func TestCanBook(t *testing.T) {
	clientID := uuid.New()
	packageID := uuid.New()

	cases := []struct {
		name      string
		clientID  uuid.UUID
		packageID uuid.UUID
		start     time.Time
		end       time.Time
		inFlight  bool
		want      bool
	}{
		{"全条件を満たす", clientID, packageID, slotStart, slotEnd, false, true},
		{"クライアント未選択", uuid.Nil, packageID, slotStart, slotEnd, false, false},
		{"パッケージ未選択", clientID, uuid.Nil, slotStart, slotEnd, false, false},
		{"区間が逆転", clientID, packageID, slotEnd, slotStart, false, false},
		{"区間がゼロ幅", clientID, packageID, slotStart, slotStart, false, false},
		{"予約処理中", clientID, packageID, slotStart, slotEnd, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.CanBook(tc.clientID, tc.packageID, tc.start, tc.end, tc.inFlight)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewRequest(t *testing.T) {
	clientID := uuid.New()
	packageID := uuid.New()

	t.Run("正常系", func(t *testing.T) {
		req, err := booking.NewRequest(clientID, packageID, slotStart, slotEnd)
		require.NoError(t, err)

		assert.Equal(t, clientID, req.ClientID())
		assert.Equal(t, packageID, req.PackageID())
		assert.Equal(t, slotStart.Unix(), req.StartEpochSeconds())
		assert.Equal(t, slotEnd.Unix(), req.EndEpochSeconds())
	})

	t.Run("必須項目の欠落", func(t *testing.T) {
		_, err := booking.NewRequest(uuid.Nil, packageID, slotStart, slotEnd)
		assert.ErrorIs(t, err, booking.ErrMissingClient)

		_, err = booking.NewRequest(clientID, uuid.Nil, slotStart, slotEnd)
		assert.ErrorIs(t, err, booking.ErrMissingPackage)

		_, err = booking.NewRequest(clientID, packageID, slotEnd, slotStart)
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})
}
