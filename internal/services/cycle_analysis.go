package services

import "time"

type AnalysisStatus string

const (
	AnalysisReady            AnalysisStatus = "ready"
	AnalysisInsufficientData AnalysisStatus = "insufficient_data"
)

// Analysis is the full result the host renders for one user on one
// reference date. Response, Prediction and the delay fields are nil while
// Status is AnalysisInsufficientData.
type Analysis struct {
	Status         AnalysisStatus `json:"status"`
	ReferenceDate  time.Time      `json:"referenceDate"`
	SkippedRecords int            `json:"skippedRecords"`
	Stats          *CycleStats    `json:"stats,omitempty"`
	Thresholds     *Thresholds    `json:"thresholds,omitempty"`
	ExpectedDate   *time.Time     `json:"expectedDate,omitempty"`
	DelayDays      *int           `json:"delayDays,omitempty"`
	Response       Response       `json:"response,omitempty"`
	Prediction     *Prediction    `json:"prediction,omitempty"`
	CurrentCycle   *CycleDay      `json:"currentCycle,omitempty"`
}

func (analysis Analysis) Tier() Tier {
	if analysis.Response == nil {
		return ""
	}
	return analysis.Response.Tier()
}

// Analyze runs statistics, delay, classification and prediction in that
// order. Classification is skipped entirely without statistics.
func Analyze(history CycleHistory, phi PHISnapshot, referenceDate time.Time) Analysis {
	analysis := Analysis{
		Status:        AnalysisInsufficientData,
		ReferenceDate: dateOnly(referenceDate),
	}

	usable, skipped := UsableRecords(history)
	analysis.SkippedRecords = skipped

	stats, err := ComputeStatistics(usable)
	if err != nil {
		if len(usable) > 0 {
			if cycleDay, ok := DescribeCurrentCycle(usable[0].StartDate, 0, referenceDate); ok {
				analysis.CurrentCycle = &cycleDay
			}
		}
		return analysis
	}
	stats.SkippedRecords = skipped

	thresholds := ComputeThresholds(stats.StandardDeviation)
	lastStart := usable[0].StartDate
	expected := ExpectedStartDate(lastStart, stats.AverageCycleLength)
	delay := ComputeDelay(lastStart, stats.AverageCycleLength, referenceDate)

	analysis.Status = AnalysisReady
	analysis.Stats = &stats
	analysis.Thresholds = &thresholds
	analysis.ExpectedDate = &expected
	analysis.DelayDays = &delay
	analysis.Response = ClassifyResponse(delay, stats.StandardDeviation, usable, phi)

	if prediction, err := PredictNextCycle(usable, delay); err == nil {
		analysis.Prediction = &prediction
	}

	if cycleDay, ok := DescribeCurrentCycle(lastStart, roundToInt(stats.AverageCycleLength), referenceDate); ok {
		analysis.CurrentCycle = &cycleDay
	}
	return analysis
}
