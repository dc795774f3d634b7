package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/models/db_models"
)

type WorkoutFilter struct {
	Type   db_models.WorkoutType
	From   *time.Time
	To     *time.Time
	Search string // case-insensitive substring of the name
}

// WorkoutRepository has no unscoped method: every query carries the owner.
type WorkoutRepository interface {
	ListForAccount(ctx context.Context, ownerID uuid.UUID, filter WorkoutFilter) ([]db_models.Workout, error)
	GetForAccount(ctx context.Context, ownerID, id uuid.UUID) (*db_models.Workout, error)
	CreateForAccount(ctx context.Context, ownerID uuid.UUID, workout *db_models.Workout) error
	UpdateForAccount(ctx context.Context, ownerID, id uuid.UUID, fields map[string]interface{}, exercises *[]db_models.Exercise) (*db_models.Workout, error)
	DeleteForAccount(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}

type WorkoutRepositoryImpl struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &WorkoutRepositoryImpl{db: db}
}

func preloadExercises(db *gorm.DB) *gorm.DB {
	return db.Preload("Exercises", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// nameContains matches rows whose name contains term, ignoring case. LIKE
// wildcards in term match literally.
func nameContains(term string) func(db *gorm.DB) *gorm.DB {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escaped+"%")
	}
}

func ownedBy(ownerID uuid.UUID, id uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ? AND user_id = ?", id, ownerID)
	}
}

func (r *WorkoutRepositoryImpl) ListForAccount(ctx context.Context, ownerID uuid.UUID, filter WorkoutFilter) ([]db_models.Workout, error) {
	q := r.db.WithContext(ctx).Scopes(preloadExercises).Where("user_id = ?", ownerID)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.From != nil {
		q = q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("date < ?", *filter.To)
	}
	if filter.Search != "" {
		q = q.Scopes(nameContains(filter.Search))
	}

	var workouts []db_models.Workout
	err := q.Order("date DESC").Order("created_at DESC").Find(&workouts).Error
	return workouts, err
}

func (r *WorkoutRepositoryImpl) GetForAccount(ctx context.Context, ownerID, id uuid.UUID) (*db_models.Workout, error) {
	var workout db_models.Workout
	err := r.db.WithContext(ctx).Scopes(preloadExercises, ownedBy(ownerID, id)).First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

// CreateForAccount stamps the owner and exercise positions; the workout and
// its exercises are written in one transaction.
func (r *WorkoutRepositoryImpl) CreateForAccount(ctx context.Context, ownerID uuid.UUID, workout *db_models.Workout) error {
	workout.ID = uuid.Nil
	workout.UserID = ownerID
	for i := range workout.Exercises {
		workout.Exercises[i].ID = uuid.Nil
		workout.Exercises[i].Position = i
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(workout).Error
	})
}

// UpdateForAccount applies fields and, when exercises is non-nil, replaces the
// exercise sequence. It returns (nil, nil) when the owner has no such workout.
func (r *WorkoutRepositoryImpl) UpdateForAccount(ctx context.Context, ownerID, id uuid.UUID, fields map[string]interface{}, exercises *[]db_models.Exercise) (*db_models.Workout, error) {
	var workout db_models.Workout

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if fields == nil {
			fields = map[string]interface{}{}
		}
		fields["updated_at"] = time.Now().UTC()

		res := tx.Model(&db_models.Workout{}).Scopes(ownedBy(ownerID, id)).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if exercises != nil {
			if err := tx.Where("workout_id = ?", id).Delete(&db_models.Exercise{}).Error; err != nil {
				return err
			}
			if len(*exercises) > 0 {
				rows := make([]db_models.Exercise, len(*exercises))
				for i, e := range *exercises {
					e.ID = uuid.Nil
					e.WorkoutID = id
					e.Position = i
					rows[i] = e
				}
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		return tx.Scopes(preloadExercises, ownedBy(ownerID, id)).First(&workout).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

func (r *WorkoutRepositoryImpl) DeleteForAccount(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	deleted := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Scopes(ownedBy(ownerID, id)).Delete(&db_models.Workout{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("workout_id = ?", id).Delete(&db_models.Exercise{}).Error
	})

	return deleted, err
}
