package services

import (
	"context"
	"fmt"
	"time"

	"github.com/terraincognita07/cycleadvisor/internal/models"
)

const DefaultPHITrendDays = 30

type PHIScoreRepository interface {
	ListRecentByUser(ctx context.Context, userID uint, limit int) ([]models.PHIScore, error)
	Upsert(ctx context.Context, score *models.PHIScore) error
}

type PHIService struct {
	accounts  *AccountService
	scores    PHIScoreRepository
	trendDays int
	location  *time.Location
}

func NewPHIService(accounts *AccountService, scores PHIScoreRepository, trendDays int, location *time.Location) *PHIService {
	if trendDays <= 0 {
		trendDays = DefaultPHITrendDays
	}
	if location == nil {
		location = time.UTC
	}
	return &PHIService{
		accounts:  accounts,
		scores:    scores,
		trendDays: trendDays,
		location:  location,
	}
}

// RecentScores returns up to the trend window of scores, oldest first.
func (service *PHIService) RecentScores(ctx context.Context, userID uint) ([]models.PHIScore, error) {
	scores, err := service.scores.ListRecentByUser(ctx, userID, service.trendDays)
	if err != nil {
		return nil, fmt.Errorf("list phi scores: %w", err)
	}
	return scores, nil
}

func (service *PHIService) Snapshot(ctx context.Context, userID uint) (PHISnapshot, error) {
	scores, err := service.RecentScores(ctx, userID)
	if err != nil {
		return PHISnapshot{}, err
	}
	return BuildPHISnapshot(scores), nil
}

// RecordScore stores one day of PHI, replacing an earlier score for the same
// date.
func (service *PHIService) RecordScore(ctx context.Context, userID uint, score models.PHIScore) (models.PHIScore, error) {
	if _, err := service.accounts.RequireUser(ctx, userID); err != nil {
		return models.PHIScore{}, err
	}

	score.ID = 0
	score.UserID = userID
	if !score.Date.IsZero() {
		score.Date = dateAtLocation(score.Date, service.location)
	}
	if err := ValidatePHIScore(score); err != nil {
		return models.PHIScore{}, err
	}
	if err := service.scores.Upsert(ctx, &score); err != nil {
		return models.PHIScore{}, fmt.Errorf("save phi score: %w", err)
	}
	return score, nil
}
