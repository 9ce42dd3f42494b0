package database

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/naseer617/ta-member-service/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "console"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// Open takes everything it needs as parameters; it must not depend on
// the config package having been loaded.
func TestOpenExhaustsAttemptsWithoutConfig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping connection-attempt test in short mode")
	}

	// port 1 is never a Postgres server; connections are refused immediately
	dsn := "postgres://u:p@127.0.0.1:1/members?sslmode=disable"
	setupCalled := false

	start := time.Now()
	_, err := Open(context.Background(), dsn, RetryPolicy{
		MaxAttempts: 2,
		Interval:    10 * time.Millisecond,
	}, 0, func(*gorm.DB) error {
		setupCalled = true
		return nil
	})

	if err == nil {
		t.Fatal("expected error for unreachable database")
	}
	if !strings.Contains(err.Error(), "after 2 attempts") {
		t.Fatalf("expected exhaustion after 2 attempts, got: %v", err)
	}
	if setupCalled {
		t.Fatal("setup must not run when the database is unreachable")
	}
	if elapsed := time.Since(start); elapsed > 30*time.Second {
		t.Fatalf("attempts took too long: %s", elapsed)
	}
}

func TestOpenCanceledBetweenAttempts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping connection-attempt test in short mode")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dsn := "postgres://u:p@127.0.0.1:1/members?sslmode=disable"
	_, err := Open(ctx, dsn, RetryPolicy{
		MaxAttempts: 3,
		Interval:    time.Hour,
	}, gormlogger.Silent, nil)

	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if !strings.Contains(err.Error(), "canceled") {
		t.Fatalf("expected cancellation error, got: %v", err)
	}
}
