package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/naseer617/ta-member-service/internal/models"
	appErr "github.com/naseer617/ta-member-service/pkg/errors"
)

// MemberRepository provides persistence for member rows. Login/email
// uniqueness is enforced by partial unique indexes scoped to active
// rows; violations are reported as already_exists errors naming the
// colliding field.
type MemberRepository interface {
	BaseRepository[models.Member]
	ListActive(ctx context.Context) ([]models.Member, error)
	SoftDeleteAll(ctx context.Context) (int64, error)
	SoftDeleteOne(ctx context.Context, id uint) (bool, error)
}

type memberRepository struct {
	BaseRepository[models.Member]
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{BaseRepository: NewBaseRepository[models.Member](db), db: db}
}

// Create inserts a member inside a transaction. A unique-constraint
// violation is translated to an already_exists error carrying the
// violated field; any other failure is reported as internal. The
// transaction is rolled back before the error is returned, so no
// partial write is observable.
func (r *memberRepository) Create(ctx context.Context, m *models.Member) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	if err != nil {
		return translateWriteError(err)
	}
	return nil
}

// ListActive returns all non-deleted members ordered by followers
// descending. An empty table yields an empty slice, not an error.
func (r *memberRepository) ListActive(ctx context.Context) ([]models.Member, error) {
	members := []models.Member{}
	err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Order("followers DESC").
		Find(&members).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list members failed")
	}
	return members, nil
}

// SoftDeleteAll flips the deleted flag for every active row in one
// atomic statement and returns how many rows were affected.
func (r *memberRepository) SoftDeleteAll(ctx context.Context) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Member{}).
			Where("deleted = ?", false).
			Update("deleted", true)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "soft delete members failed")
	}
	return affected, nil
}

// SoftDeleteOne flips the deleted flag for the row matching id that is
// still active. The conditional update makes concurrent deletes of the
// same id safe: at most one caller observes true; the rest see zero
// rows affected, which also covers ids that never existed.
func (r *memberRepository) SoftDeleteOne(ctx context.Context, id uint) (bool, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Member{}).
			Where("id = ? AND deleted = ?", id, false).
			Update("deleted", true)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return false, appErr.Wrap(err, appErr.CodeInternal, "soft delete member failed")
	}
	return affected > 0, nil
}

// translateWriteError maps a failed write to the error taxonomy.
// Postgres reports unique violations as SQLSTATE 23505 with the
// constraint name; the name tells login and email conflicts apart.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch field := uniqueField(pgErr.ConstraintName); field {
		case "":
			return appErr.Wrap(err, appErr.CodeInternal, "unrecognized unique constraint")
		default:
			return appErr.AlreadyExists(field, err)
		}
	}
	return appErr.Wrap(err, appErr.CodeInternal, "create member failed")
}

func uniqueField(constraint string) string {
	switch {
	case strings.Contains(constraint, "login"):
		return "login"
	case strings.Contains(constraint, "email"):
		return "email"
	default:
		return ""
	}
}
