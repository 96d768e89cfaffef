package repository

import (
	"context"

	"lesson-scheduler/internal/infra"
	"lesson-scheduler/internal/infra/db"
	"lesson-scheduler/internal/usecase/commands"
	"lesson-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type PackageRepository struct {
	db db.DBTX
}

func NewPackageRepository(db db.DBTX) *PackageRepository {
	return &PackageRepository{db: db}
}

const listPackagesByClientQuery = `
	SELECT id, client_id, package_type, lessons_remaining, purchase_date,
	       expiration_date,
	       COALESCE(expiration_date < now(), false) AS is_expired
	FROM lesson_packages
	WHERE client_id = $1
	ORDER BY purchase_date
`

func (r *PackageRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]commands.PackageSnapshot, error) {
	rows, err := r.db.Query(ctx, listPackagesByClientQuery, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	defer rows.Close()

	var snapshots []commands.PackageSnapshot
	for rows.Next() {
		var s commands.PackageSnapshot
		if err := rows.Scan(
			&s.ID,
			&s.ClientID,
			&s.PackageType,
			&s.LessonsRemaining,
			&s.PurchaseDate,
			&s.ExpirationDate,
			&s.IsExpired,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan package row", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read package rows", err)
	}

	return snapshots, nil
}

// debitPackageQuery guards against over-consumption: the row is only updated
// while lessons remain, so a concurrent debit past zero matches nothing.
const debitPackageQuery = `
	UPDATE lesson_packages
	SET lessons_remaining = lessons_remaining - 1
	WHERE id = $1 AND lessons_remaining > 0
`

func (r *PackageRepository) Debit(ctx context.Context, tx db.DBTX, packageID uuid.UUID) error {
	tag, err := tx.Exec(ctx, debitPackageQuery, packageID)
	if err != nil {
		return infra.WrapRepoErr("failed to debit package", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("package has no lessons remaining", nil, infra.KindNotFound)
	}
	return nil
}

type PackageReadStore struct {
	db db.DBTX
}

func NewPackageReadStore(db db.DBTX) *PackageReadStore {
	return &PackageReadStore{db: db}
}

func (r *PackageReadStore) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*queries.PackageView, error) {
	rows, err := r.db.Query(ctx, listPackagesByClientQuery, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	defer rows.Close()

	var views []*queries.PackageView
	for rows.Next() {
		var view queries.PackageView
		if err := rows.Scan(
			&view.ID,
			&view.ClientID,
			&view.PackageType,
			&view.LessonsRemaining,
			&view.PurchaseDate,
			&view.ExpirationDate,
			&view.IsExpired,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan package row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read package rows", err)
	}

	return views, nil
}
