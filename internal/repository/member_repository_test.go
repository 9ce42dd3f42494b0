package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/naseer617/ta-member-service/internal/models"
	"github.com/naseer617/ta-member-service/internal/schema"
	appErr "github.com/naseer617/ta-member-service/pkg/errors"
)

// startPostgres brings up a throwaway Postgres container and returns a
// migrated gorm handle. Skipped with -short so unit runs stay fast.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed repository tests in short mode")
	}

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("members_test"),
		tcpostgres.WithUsername("test_user"),
		tcpostgres.WithPassword("test_pw"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(ctx) })

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, schema.Migrate(db))
	return db
}

func newMember(login, email string, followers int) *models.Member {
	return &models.Member{
		FirstName: "Test",
		LastName:  "User",
		Login:     login,
		Email:     email,
		Followers: followers,
	}
}

func TestCreateAndListOrdering(t *testing.T) {
	repo := NewMemberRepository(startPostgres(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newMember("low", "low@example.com", 3)))
	require.NoError(t, repo.Create(ctx, newMember("high", "high@example.com", 42)))
	require.NoError(t, repo.Create(ctx, newMember("mid", "mid@example.com", 10)))

	members, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, []string{"high", "mid", "low"}, []string{members[0].Login, members[1].Login, members[2].Login})

	// server-assigned fields are populated
	assert.NotZero(t, members[0].ID)
	assert.False(t, members[0].CreatedAt.IsZero())
	assert.False(t, members[0].UpdatedAt.IsZero())
}

func TestUniquenessScopedToActiveRows(t *testing.T) {
	repo := NewMemberRepository(startPostgres(t))
	ctx := context.Background()

	first := newMember("alice01", "alice@example.com", 0)
	require.NoError(t, repo.Create(ctx, first))

	// same login, active -> conflict on login
	err := repo.Create(ctx, newMember("alice01", "other@example.com", 0))
	require.Error(t, err)
	assert.Equal(t, "login", appErr.ConflictField(err))

	// same email, active -> conflict on email
	err = repo.Create(ctx, newMember("other", "alice@example.com", 0))
	require.Error(t, err)
	assert.Equal(t, "email", appErr.ConflictField(err))

	// soft delete frees up both values
	deleted, err := repo.SoftDeleteOne(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	require.NoError(t, repo.Create(ctx, newMember("alice01", "alice@example.com", 0)))
}

func TestListExcludesDeleted(t *testing.T) {
	repo := NewMemberRepository(startPostgres(t))
	ctx := context.Background()

	m := newMember("gone", "gone@example.com", 0)
	require.NoError(t, repo.Create(ctx, m))
	require.NoError(t, repo.Create(ctx, newMember("stays", "stays@example.com", 0)))

	deleted, err := repo.SoftDeleteOne(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	members, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "stays", members[0].Login)

	// the row still exists, just flagged
	var row models.Member
	require.NoError(t, repo.GetByID(ctx, m.ID, &row))
	assert.True(t, row.Deleted)
}

func TestSoftDeleteOneTwice(t *testing.T) {
	repo := NewMemberRepository(startPostgres(t))
	ctx := context.Background()

	m := newMember("once", "once@example.com", 0)
	require.NoError(t, repo.Create(ctx, m))

	deleted, err := repo.SoftDeleteOne(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.SoftDeleteOne(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// unknown id behaves the same as already-deleted
	deleted, err = repo.SoftDeleteOne(ctx, 99999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSoftDeleteAll(t *testing.T) {
	repo := NewMemberRepository(startPostgres(t))
	ctx := context.Background()

	// empty table: zero rows affected, no error
	affected, err := repo.SoftDeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, affected)

	require.NoError(t, repo.Create(ctx, newMember("a", "a@example.com", 0)))
	require.NoError(t, repo.Create(ctx, newMember("b", "b@example.com", 0)))

	affected, err = repo.SoftDeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	members, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)
}
