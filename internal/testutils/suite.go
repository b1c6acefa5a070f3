package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"lpg-backoffice/internal/config"
	"lpg-backoffice/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "lpg"
	pgPassword = "lpg-test"
	pgDatabase = "lpg_backoffice_test"
)

// containers started once per test binary and shared by every suite
var (
	pgOnce     sync.Once
	pgErr      error
	pool       *dockertest.Pool
	pgResource *dockertest.Resource
	sharedDB   *gorm.DB
	sharedCfg  *config.Config

	redisOnce     sync.Once
	redisErr      error
	redisResource *dockertest.Resource
	sharedRedis   *redis.Client
)

// tenantTables are truncated between tests, children first
var tenantTables = []string{
	"backups",
	"settings",
	"payments",
	"bills",
	"cylinder_entries",
	"customers",
	"otp_codes",
	"role_permissions",
	"user_permissions",
	"users",
}

// BaseTestSuite gives repository suites a migrated database and a matching config
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts postgres on first use and returns a handle on the shared database
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()
	pgOnce.Do(func() { pgErr = startPostgres() })
	if pgErr != nil {
		t.Fatalf("postgres test container: %v", pgErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedCfg}
}

// SetupRedis starts a redis container next to postgres and returns a client for it
func SetupRedis(t *testing.T) *redis.Client {
	t.Helper()
	SetupTestSuite(t)
	redisOnce.Do(func() { redisErr = startRedis() })
	if redisErr != nil {
		t.Fatalf("redis test container: %v", redisErr)
	}
	return sharedRedis
}

// FlushRedis clears every key of the shared redis
func FlushRedis(t *testing.T) {
	t.Helper()
	if sharedRedis == nil {
		return
	}
	if err := sharedRedis.FlushAll(context.Background()).Err(); err != nil {
		t.Fatalf("flush redis: %v", err)
	}
}

// CleanupSharedContainer purges the containers; call it from TestMain after m.Run
func CleanupSharedContainer() {
	if sharedRedis != nil {
		_ = sharedRedis.Close()
		sharedRedis = nil
	}
	_ = database.Close(sharedDB)
	sharedDB = nil

	if pool == nil {
		return
	}
	for _, r := range []*dockertest.Resource{redisResource, pgResource} {
		if r == nil {
			continue
		}
		if err := pool.Purge(r); err != nil {
			log.Printf("purge %s: %v", r.Container.Name, err)
		}
	}
	redisResource, pgResource, pool = nil, nil, nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container lives until CleanupSharedContainer
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every back office table
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, table := range tenantTables {
		if m.HasTable(table) {
			s.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q CASCADE`, table))
		}
	}
}

func startPostgres() error {
	p, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("docker: %w", err)
	}
	p.MaxWait = 2 * time.Minute
	pool = p

	pgResource, err = pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, autoRemove)
	if err != nil {
		return fmt.Errorf("run postgres: %w", err)
	}

	port := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	err = pool.Retry(func() error {
		conn, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer conn.Close()
		return conn.Ping()
	})
	if err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	sharedDB, err = database.Initialize(dsn, nil)
	if err != nil {
		return err
	}
	sharedCfg = &config.Config{
		DatabaseURL:              dsn,
		Port:                     "7010",
		LogLevel:                 "debug",
		Environment:              "test",
		JWTSecret:                "integration-test-secret",
		SessionCookieName:        "lpg_session",
		SessionTTLHours:          24,
		OTPLength:                6,
		OTPTTLMinutes:            10,
		OTPMaxAttempts:           5,
		OTPResendCooldownSeconds: 60,
		BackupRetention:          3,
	}
	log.Printf("postgres test container listening on %s", port)
	return nil
}

func startRedis() error {
	var err error
	redisResource, err = pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, autoRemove)
	if err != nil {
		return fmt.Errorf("run redis: %w", err)
	}

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:" + redisResource.GetPort("6379/tcp")})
	if err := pool.Retry(func() error { return client.Ping(context.Background()).Err() }); err != nil {
		return fmt.Errorf("redis never became ready: %w", err)
	}
	sharedRedis = client
	return nil
}

func autoRemove(hc *docker.HostConfig) {
	hc.AutoRemove = true
	hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
}
