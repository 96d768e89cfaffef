//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"lesson-scheduler/cmd/bootstrap"
	"lesson-scheduler/cmd/bootstrap/components"
	"lesson-scheduler/internal/infra/db"
	"lesson-scheduler/internal/pkg/config"
	"lesson-scheduler/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = "5432/tcp"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
)

// ------------------------------------------------------------
// 各テストプロセス用の環境構築
// PostgreSQLコンテナはプロセス間で共有し、DBはプロセス毎に分離する
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	host, port := postgresHostPort(t)
	pool, dbConfig := prepareDatabase(t, host, port)

	router, cfg, app := buildE2EApp(pool, dbConfig)
	require.NotNil(t, router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	return pool, router, cfg
}

// ------------------------------------------------------------
// プロセス専用DBの作成とマイグレーション適用
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, host string, port nat.Port) (*pgxpool.Pool, config.DBConfig) {
	// 並列プロセスが衝突しないようランダムなDB名を使う
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		pgUser, pgPassword, host, port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer adminPool.Close()

	// コンテナ起動直後は接続が不安定なことがあるためリトライする
	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			wait := min(time.Duration(500+attempt*500)*time.Millisecond, 3*time.Second)
			slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", createErr.Error())
			time.Sleep(wait)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()

		dropPool, err := pgxpool.New(dropCtx, adminDSN)
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer dropPool.Close()

		if _, err := dropPool.Exec(dropCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
	}

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	require.NotNil(t, pool, "データベース接続が nil です")

	require.NoError(t, applyMigrations(t, pool), "データベースマイグレーションに失敗")

	return pool, dbConfig
}

func applyMigrations(t *testing.T, pool *pgxpool.Pool) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// go test はパッケージディレクトリで実行されるため、リポジトリルートを遡って探す
	const migration = "migrations/001_initial_schema.sql"
	var (
		sqlContent []byte
		readErr    error
	)
	for _, prefix := range []string{".", "..", "../..", "../../.."} {
		sqlContent, readErr = os.ReadFile(filepath.Join(prefix, migration))
		if readErr == nil {
			break
		}
	}
	if readErr != nil {
		return fmt.Errorf("failed to read migration file %s: %w", migration, readErr)
	}

	if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", migration, err)
	}
	return nil
}

// ------------------------------------------------------------
// 本番と同じfxモジュール構成でアプリを組み立てる
// config/DBのみテスト用の値に差し替える
// ------------------------------------------------------------
func buildE2EApp(pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	app := fx.New(
		fx.Module("testdb",
			fx.Provide(func() *pgxpool.Pool { return pool }),
		),
		fx.Module("testconfig",
			fx.Provide(func() config.Config {
				c := config.NewTestConfig()
				c.DB = dbConfig
				return c
			}),
		),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.JWTModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	if router == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return router, cfg, app
}

// ------------------------------------------------------------
// PostgreSQLコンテナを一度だけ起動し、マップ済みポートを返す
// ------------------------------------------------------------
func postgresHostPort(t *testing.T) (string, nat.Port) {
	pgOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{pgPort},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m", // データをRAMに載せてI/O削減
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off", // テスト用途なので耐久性より速度を優先
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_wal_size=512MB",
				"-c", "shared_buffers=256MB",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					pgUser, pgPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Name:   "postgres-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		pgContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")

		t.Cleanup(func() {
			if pgContainer == nil {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := pgContainer.Terminate(ctx); err != nil {
				slog.Warn("PostgreSQLコンテナの終了に失敗しました", "error", err.Error())
			}
		})
	})

	ctx := context.Background()
	mappedPort, err := pgContainer.MappedPort(ctx, nat.Port(pgPort))
	require.NoError(t, err, "PostgreSQLコンテナ情報の取得に失敗")
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err, "PostgreSQLコンテナ情報の取得に失敗")

	return host, mappedPort
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	db, router, cfg := setupE2EEnvironment(s.T())
	s.DB = db
	s.Router = router
	s.Config = cfg
}

func (s *SharedSuite) SetupSubTest() {
	// TRUNCATE で毎サブテスト前に DB を初期化
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
}
