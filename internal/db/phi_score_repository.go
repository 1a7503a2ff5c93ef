package db

import (
	"context"

	"github.com/terraincognita07/cycleadvisor/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PHIScoreRepository struct {
	database *gorm.DB
}

func NewPHIScoreRepository(database *gorm.DB) *PHIScoreRepository {
	return &PHIScoreRepository{database: database}
}

// ListRecentByUser returns at most limit scores, oldest first.
func (repo *PHIScoreRepository) ListRecentByUser(ctx context.Context, userID uint, limit int) ([]models.PHIScore, error) {
	scores := make([]models.PHIScore, 0)
	query := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&scores).Error; err != nil {
		return nil, err
	}

	for left, right := 0, len(scores)-1; left < right; left, right = left+1, right-1 {
		scores[left], scores[right] = scores[right], scores[left]
	}
	return scores, nil
}

// Upsert keeps one score per user and day; a second write for the same day
// replaces the category values.
func (repo *PHIScoreRepository) Upsert(ctx context.Context, score *models.PHIScore) error {
	return repo.database.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"overall", "physical", "mental", "sleep", "nutrition"}),
	}).Create(score).Error
}
