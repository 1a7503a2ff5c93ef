package services

import (
	"context"
	"fmt"
	"time"

	"github.com/terraincognita07/cycleadvisor/internal/models"
)

type CycleRecordRepository interface {
	ListByUserNewestFirst(ctx context.Context, userID uint) ([]models.CycleRecord, error)
	Create(ctx context.Context, record *models.CycleRecord) error
	CreateBatch(ctx context.Context, records []models.CycleRecord) error
}

type CycleRecordService struct {
	accounts *AccountService
	records  CycleRecordRepository
	location *time.Location
}

func NewCycleRecordService(accounts *AccountService, records CycleRecordRepository, location *time.Location) *CycleRecordService {
	if location == nil {
		location = time.UTC
	}
	return &CycleRecordService{
		accounts: accounts,
		records:  records,
		location: location,
	}
}

func (service *CycleRecordService) History(ctx context.Context, userID uint) (CycleHistory, error) {
	if _, err := service.accounts.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	records, err := service.records.ListByUserNewestFirst(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cycle records: %w", err)
	}
	return CycleHistory(records), nil
}

// AddRecord validates and appends one closed cycle.
func (service *CycleRecordService) AddRecord(ctx context.Context, userID uint, record models.CycleRecord) (models.CycleRecord, error) {
	if _, err := service.accounts.RequireUser(ctx, userID); err != nil {
		return models.CycleRecord{}, err
	}

	prepared, err := service.prepare(userID, record)
	if err != nil {
		return models.CycleRecord{}, err
	}
	if err := service.records.Create(ctx, &prepared); err != nil {
		return models.CycleRecord{}, fmt.Errorf("create cycle record: %w", err)
	}
	return prepared, nil
}

// ImportRecords validates every record before writing any of them.
func (service *CycleRecordService) ImportRecords(ctx context.Context, userID uint, records []models.CycleRecord) (int, error) {
	if _, err := service.accounts.RequireUser(ctx, userID); err != nil {
		return 0, err
	}

	prepared := make([]models.CycleRecord, 0, len(records))
	for index, record := range records {
		entry, err := service.prepare(userID, record)
		if err != nil {
			return 0, fmt.Errorf("record %d: %w", index, err)
		}
		prepared = append(prepared, entry)
	}
	if err := service.records.CreateBatch(ctx, prepared); err != nil {
		return 0, fmt.Errorf("import cycle records: %w", err)
	}
	return len(prepared), nil
}

func (service *CycleRecordService) prepare(userID uint, record models.CycleRecord) (models.CycleRecord, error) {
	record.ID = 0
	record.UserID = userID
	record.StartDate = dateAtLocation(record.StartDate, service.location)
	if !record.EndDate.IsZero() {
		record.EndDate = dateAtLocation(record.EndDate, service.location)
	}
	record.Symptoms = NormalizeSymptomTags(record.Symptoms)
	if err := ValidateCycleRecord(record); err != nil {
		return models.CycleRecord{}, err
	}
	return record, nil
}

func dateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	return dateOnly(value.In(location))
}
