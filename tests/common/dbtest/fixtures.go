//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestTrainer(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	trainerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO trainers (id, display_name, is_active) VALUES ($1, $2, true)",
		trainerID, name)
	require.NoError(t, err)

	return trainerID
}

func CreateTestUser(t *testing.T, db DBLike, email, role string, trainerID *uuid.UUID) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, trainer_id, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role, trainerID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestClient(t *testing.T, db DBLike, trainerID uuid.UUID, fullName string) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO clients (id, trainer_id, full_name) VALUES ($1, $2, $3)",
		clientID, trainerID, fullName)
	require.NoError(t, err)

	return clientID
}

func CreateTestPackage(t *testing.T, db DBLike, clientID uuid.UUID, packageType string, lessonsRemaining int, expirationDate *time.Time) uuid.UUID {
	t.Helper()

	packageID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO lesson_packages (id, client_id, package_type, lessons_remaining, purchase_date, expiration_date) VALUES ($1, $2, $3, $4, now(), $5)",
		packageID, clientID, packageType, lessonsRemaining, expirationDate)
	require.NoError(t, err)

	return packageID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
