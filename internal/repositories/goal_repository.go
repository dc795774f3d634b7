package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/models/db_models"
)

type GoalFilter struct {
	Type      db_models.GoalType
	Completed *bool
	Search    string
}

type GoalRepositoryInterface interface {
	ListForAccount(ctx context.Context, ownerID uuid.UUID, filter GoalFilter) ([]db_models.Goal, error)
	GetForAccount(ctx context.Context, ownerID, id uuid.UUID) (*db_models.Goal, error)
	CreateForAccount(ctx context.Context, ownerID uuid.UUID, goal *db_models.Goal) error
	UpdateForAccount(ctx context.Context, ownerID, id uuid.UUID, fields map[string]interface{}) (*db_models.Goal, error)
	DeleteForAccount(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) ListForAccount(ctx context.Context, ownerID uuid.UUID, filter GoalFilter) ([]db_models.Goal, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Completed != nil {
		q = q.Where("completed = ?", *filter.Completed)
	}
	if filter.Search != "" {
		q = q.Scopes(nameContains(filter.Search))
	}

	var goals []db_models.Goal
	err := q.Order("deadline ASC").Order("created_at ASC").Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) GetForAccount(ctx context.Context, ownerID, id uuid.UUID) (*db_models.Goal, error) {
	var goal db_models.Goal
	err := r.db.WithContext(ctx).Scopes(ownedBy(ownerID, id)).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) CreateForAccount(ctx context.Context, ownerID uuid.UUID, goal *db_models.Goal) error {
	goal.ID = uuid.Nil
	goal.UserID = ownerID
	return r.db.WithContext(ctx).Create(goal).Error
}

// UpdateForAccount returns (nil, nil) when the owner has no such goal.
func (r *GoalRepository) UpdateForAccount(ctx context.Context, ownerID, id uuid.UUID, fields map[string]interface{}) (*db_models.Goal, error) {
	var goal db_models.Goal

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if fields == nil {
			fields = map[string]interface{}{}
		}
		fields["updated_at"] = time.Now().UTC()

		res := tx.Model(&db_models.Goal{}).Scopes(ownedBy(ownerID, id)).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Scopes(ownedBy(ownerID, id)).First(&goal).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) DeleteForAccount(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Scopes(ownedBy(ownerID, id)).Delete(&db_models.Goal{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
