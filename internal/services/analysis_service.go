package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

type HistoryLoader interface {
	History(ctx context.Context, userID uint) (CycleHistory, error)
}

type SnapshotLoader interface {
	Snapshot(ctx context.Context, userID uint) (PHISnapshot, error)
}

type AnalysisService struct {
	cycles HistoryLoader
	phi    SnapshotLoader
}

func NewAnalysisService(cycles HistoryLoader, phi SnapshotLoader) *AnalysisService {
	return &AnalysisService{
		cycles: cycles,
		phi:    phi,
	}
}

// LoadInputs fetches the cycle history and the PHI snapshot concurrently.
func (service *AnalysisService) LoadInputs(ctx context.Context, userID uint) (CycleHistory, PHISnapshot, error) {
	var (
		history  CycleHistory
		snapshot PHISnapshot
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		loaded, err := service.cycles.History(groupCtx, userID)
		if err != nil {
			return err
		}
		history = loaded
		return nil
	})
	group.Go(func() error {
		loaded, err := service.phi.Snapshot(groupCtx, userID)
		if err != nil {
			return err
		}
		snapshot = loaded
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, PHISnapshot{}, err
	}
	return history, snapshot, nil
}

func (service *AnalysisService) Analyze(ctx context.Context, userID uint, referenceDate time.Time) (Analysis, CycleHistory, error) {
	history, snapshot, err := service.LoadInputs(ctx, userID)
	if err != nil {
		return Analysis{}, nil, err
	}
	return Analyze(history, snapshot, referenceDate), history, nil
}

// Predict pairs the next-cycle window with the delay observed on
// referenceDate.
func (service *AnalysisService) Predict(ctx context.Context, userID uint, referenceDate time.Time) (Prediction, error) {
	history, _, err := service.LoadInputs(ctx, userID)
	if err != nil {
		return Prediction{}, err
	}
	return PredictNextCycle(history, currentDelay(history, referenceDate))
}

// HealthcareSummary builds the consultation report regardless of tier.
func (service *AnalysisService) HealthcareSummary(ctx context.Context, userID uint, referenceDate time.Time) (HealthcareSummary, error) {
	history, snapshot, err := service.LoadInputs(ctx, userID)
	if err != nil {
		return HealthcareSummary{}, err
	}
	usable, _ := UsableRecords(history)
	return GenerateHealthcareSummary(usable, snapshot, currentDelay(history, referenceDate)), nil
}

// currentDelay is zero when the history cannot produce statistics.
func currentDelay(history CycleHistory, referenceDate time.Time) int {
	usable, _ := UsableRecords(history)
	stats, err := ComputeStatistics(usable)
	if err != nil {
		return 0
	}
	return ComputeDelay(usable[0].StartDate, stats.AverageCycleLength, referenceDate)
}
