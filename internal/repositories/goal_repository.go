package repositories

import (
	"errors"
	"fmt"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{
		db: db,
	}
}

// GetByOwner retrieves the stored goal for an owner
func (r *goalRepository) GetByOwner(ownerID uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.Where("owner_id = ?", ownerID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &goal, nil
}

// Upsert creates or replaces the single goal row for an owner
func (r *goalRepository) Upsert(goal *models.Goal) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "target", "updated_at"}),
	}).Create(goal).Error; err != nil {
		return fmt.Errorf("failed to upsert goal: %w", err)
	}
	return nil
}
