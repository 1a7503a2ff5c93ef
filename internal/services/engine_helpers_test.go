package services

import (
	"time"

	"github.com/terraincognita07/cycleadvisor/internal/models"
)

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

// historyFromLengths builds a newest-first history whose most recent cycle
// starts on lastStart and where each earlier start is one length before.
func historyFromLengths(lastStart string, lengths ...int) CycleHistory {
	history := make(CycleHistory, 0, len(lengths))
	start := mustParseDay(lastStart)
	for _, length := range lengths {
		history = append(history, models.CycleRecord{
			StartDate: start,
			EndDate:   start.AddDate(0, 0, length-1),
			Length:    length,
		})
		start = start.AddDate(0, 0, -length)
	}
	return history
}
