package services

import (
	"time"

	"github.com/terraincognita07/cycleadvisor/internal/models"
)

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
)

// ExpectedStartDate projects the next start from the last one using the
// rounded average length.
func ExpectedStartDate(lastPeriodStart time.Time, averageCycleLength float64) time.Time {
	return dateOnly(lastPeriodStart).AddDate(0, 0, roundToInt(averageCycleLength))
}

// ComputeDelay is positive when late, negative when early.
func ComputeDelay(lastPeriodStart time.Time, averageCycleLength float64, referenceDate time.Time) int {
	return daysBetween(ExpectedStartDate(lastPeriodStart, averageCycleLength), referenceDate)
}

type CycleDay struct {
	Day             int    `json:"day"`
	DaysUntilNext   int    `json:"daysUntilNext"`
	DaysSinceStart  int    `json:"daysSinceStart"`
	Phase           string `json:"phase"`
	CycleLengthUsed int    `json:"cycleLengthUsed"`
}

// DescribeCurrentCycle places referenceDate inside a repeating cycle that
// began at lastPeriodStart. It reports false when referenceDate precedes the
// start.
func DescribeCurrentCycle(lastPeriodStart time.Time, cycleLength int, referenceDate time.Time) (CycleDay, bool) {
	if cycleLength <= 0 {
		cycleLength = models.DefaultCycleLength
	}
	daysSince := daysBetween(lastPeriodStart, referenceDate)
	if daysSince < 0 {
		return CycleDay{}, false
	}

	offset := daysSince % cycleLength
	day := offset + 1
	return CycleDay{
		Day:             day,
		DaysUntilNext:   cycleLength - offset,
		DaysSinceStart:  daysSince,
		Phase:           phaseForCycleDay(day),
		CycleLengthUsed: cycleLength,
	}, true
}

func phaseForCycleDay(day int) string {
	switch {
	case day <= 5:
		return PhaseMenstrual
	case day >= 12 && day <= 16:
		return PhaseOvulation
	case day > 16:
		return PhaseLuteal
	default:
		return PhaseFollicular
	}
}
