//go:build e2e

// Package containers starts the Postgres and Redis instances e2e tests run against.
// Each test binary starts its own pair once; every test gets a fresh database.
package containers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"staybook/internal/infra/cache"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresErr       error

	redisOnce      sync.Once
	redisContainer testcontainers.Container
	redisErr       error
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// NewDatabase creates a migrated database for one test and drops it afterwards.
func NewDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	postgresOnce.Do(startPostgres)
	require.NoError(t, postgresErr, "failed to start postgres container")

	info, err := hostPort(postgresContainer, "5432/tcp")
	require.NoError(t, err)

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to connect as admin")
	defer admin.Close()

	_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	cfg := config.NewTestConfig().DB
	cfg.Host = info.Host
	cfg.Port = info.Port.Port()
	cfg.User = testUser
	cfg.Password = testPassword
	cfg.DBName = dbName

	pool, closePool, err := db.Connect(ctx, cfg)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.Migrate(ctx, pool), "failed to migrate test database")

	t.Cleanup(func() {
		closePool()

		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()
		cleanup, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to connect for test database cleanup", "database", dbName, "error", err.Error())
			return
		}
		defer cleanup.Close()
		if _, err := cleanup.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	return pool, cfg
}

// NewRedis returns a client on an emptied database.
func NewRedis(t *testing.T) (*redis.Client, config.RedisConfig) {
	t.Helper()

	redisOnce.Do(startRedis)
	require.NoError(t, redisErr, "failed to start redis container")

	info, err := hostPort(redisContainer, "6379/tcp")
	require.NoError(t, err)

	cfg := config.NewTestConfig().Redis
	cfg.Addr = info.Host + ":" + info.Port.Port()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := cache.NewRedisClient(ctx, cfg)
	require.NoError(t, err, "failed to connect to redis")
	require.NoError(t, client.FlushDB(ctx).Err())

	t.Cleanup(func() { _ = client.Close() })
	return client, cfg
}

func startPostgres() {
	postgresContainer, postgresErr = startGenericContainer(testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{
			"/var/lib/postgresql/data": "rw,size=512m",
		},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
				testUser, testPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "e2e-tests"},
	}, 180)
}

func startRedis() {
	redisContainer, redisErr = startGenericContainer(testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}, 60)
}

// Containers are reaped by ryuk when the test binary exits.
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func hostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}
