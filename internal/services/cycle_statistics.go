package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/cycleadvisor/internal/models"
)

var (
	ErrInsufficientData = errors.New("insufficient cycle data")
	ErrInvalidRecord    = errors.New("invalid cycle record")
)

const (
	minStatisticsCycles = 2
	minPredictionCycles = 3
	recentCycleWindow   = 6
)

// CycleHistory is ordered newest first: index 0 is the most recent cycle.
type CycleHistory []models.CycleRecord

type CycleStats struct {
	AverageCycleLength float64 `json:"averageCycleLength"`
	StandardDeviation  float64 `json:"standardDeviation"`
	MinLength          int     `json:"minLength"`
	MaxLength          int     `json:"maxLength"`
	TotalCycles        int     `json:"totalCycles"`
	SkippedRecords     int     `json:"skippedRecords"`
}

func ValidateCycleRecord(record models.CycleRecord) error {
	switch {
	case record.Length <= 0:
		return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidRecord, record.Length)
	case record.StartDate.IsZero():
		return fmt.Errorf("%w: start date is required", ErrInvalidRecord)
	case !record.EndDate.IsZero() && daysBetween(record.StartDate, record.EndDate) < 0:
		return fmt.Errorf("%w: end date %s precedes start date %s", ErrInvalidRecord,
			record.EndDate.Format("2006-01-02"), record.StartDate.Format("2006-01-02"))
	case record.PHIScore < 0 || record.PHIScore > 100:
		return fmt.Errorf("%w: phi score must be within 0-100, got %d", ErrInvalidRecord, record.PHIScore)
	}
	return nil
}

// UsableRecords drops records that fail validation and reports how many were
// dropped. Order is preserved.
func UsableRecords(history CycleHistory) (CycleHistory, int) {
	usable := make(CycleHistory, 0, len(history))
	for _, record := range history {
		if ValidateCycleRecord(record) != nil {
			continue
		}
		usable = append(usable, record)
	}
	return usable, len(history) - len(usable)
}

// ComputeStatistics returns ErrInsufficientData when fewer than two usable
// cycles remain; callers branch on it instead of classifying.
func ComputeStatistics(history CycleHistory) (CycleStats, error) {
	usable, skipped := UsableRecords(history)
	if len(usable) < minStatisticsCycles {
		return CycleStats{SkippedRecords: skipped}, fmt.Errorf("%w: %d usable cycles, need %d",
			ErrInsufficientData, len(usable), minStatisticsCycles)
	}

	lengths := recordLengths(usable)
	average := averageInts(lengths)

	stats := CycleStats{
		AverageCycleLength: roundToTenth(average),
		StandardDeviation:  roundToTenth(populationStdDev(lengths, average)),
		MinLength:          lengths[0],
		MaxLength:          lengths[0],
		TotalCycles:        len(usable),
		SkippedRecords:     skipped,
	}
	for _, length := range lengths[1:] {
		if length < stats.MinLength {
			stats.MinLength = length
		}
		if length > stats.MaxLength {
			stats.MaxLength = length
		}
	}
	return stats, nil
}

func recordLengths(history CycleHistory) []int {
	lengths := make([]int, 0, len(history))
	for _, record := range history {
		lengths = append(lengths, record.Length)
	}
	return lengths
}

func recentCycles(history CycleHistory) CycleHistory {
	if len(history) <= recentCycleWindow {
		return history
	}
	return history[:recentCycleWindow]
}
