package db

import (
	"context"

	"github.com/terraincognita07/cycleadvisor/internal/models"
	"gorm.io/gorm"
)

const cycleRecordBatchSize = 100

type CycleRecordRepository struct {
	database *gorm.DB
}

func NewCycleRecordRepository(database *gorm.DB) *CycleRecordRepository {
	return &CycleRecordRepository{database: database}
}

func (repo *CycleRecordRepository) ListByUserNewestFirst(ctx context.Context, userID uint) ([]models.CycleRecord, error) {
	records := make([]models.CycleRecord, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CycleRecordRepository) Create(ctx context.Context, record *models.CycleRecord) error {
	return repo.database.WithContext(ctx).Create(record).Error
}

func (repo *CycleRecordRepository) CreateBatch(ctx context.Context, records []models.CycleRecord) error {
	if len(records) == 0 {
		return nil
	}
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(records, cycleRecordBatchSize).Error
	})
}
