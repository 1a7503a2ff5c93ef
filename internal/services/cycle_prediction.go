package services

import (
	"fmt"
	"math"
	"time"
)

const (
	minPredictionConfidence = 70
	maxPredictionConfidence = 100
)

type Prediction struct {
	PredictedDate     time.Time `json:"predictedDate"`
	EarliestDate      time.Time `json:"earliestDate"`
	LatestDate        time.Time `json:"latestDate"`
	ConfidencePercent int       `json:"confidencePercent"`
	DelayDays         int       `json:"delayDays"`
}

// PredictNextCycle needs at least three usable cycles. delayDays is carried
// through for display next to the window and does not move the dates.
func PredictNextCycle(history CycleHistory, delayDays int) (Prediction, error) {
	usable, _ := UsableRecords(history)
	if len(usable) < minPredictionCycles {
		return Prediction{}, fmt.Errorf("%w: %d usable cycles, need %d",
			ErrInsufficientData, len(usable), minPredictionCycles)
	}

	stats, err := ComputeStatistics(usable)
	if err != nil {
		return Prediction{}, err
	}

	predicted := ExpectedStartDate(usable[0].StartDate, stats.AverageCycleLength)
	spread := int(math.Ceil(stats.StandardDeviation))

	return Prediction{
		PredictedDate:     predicted,
		EarliestDate:      predicted.AddDate(0, 0, -spread),
		LatestDate:        predicted.AddDate(0, 0, spread),
		ConfidencePercent: predictionConfidence(stats.StandardDeviation),
		DelayDays:         delayDays,
	}, nil
}

func predictionConfidence(standardDeviation float64) int {
	return clampInt(roundToInt(100-standardDeviation*10), minPredictionConfidence, maxPredictionConfidence)
}
