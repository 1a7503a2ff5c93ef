package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/cycleadvisor/internal/models"
)

// CycleRecordInput is the wire form of a cycle record: dates are plain
// YYYY-MM-DD strings read in the configured location.
type CycleRecordInput struct {
	StartDate string   `json:"startDate" yaml:"startDate"`
	EndDate   string   `json:"endDate" yaml:"endDate"`
	Length    int      `json:"length" yaml:"length"`
	Symptoms  []string `json:"symptoms" yaml:"symptoms"`
	PHIScore  int      `json:"phiScore" yaml:"phiScore"`
}

type PHIScoreInput struct {
	Date      string `json:"date" yaml:"date"`
	Overall   int    `json:"overall" yaml:"overall"`
	Physical  int    `json:"physical" yaml:"physical"`
	Mental    int    `json:"mental" yaml:"mental"`
	Sleep     int    `json:"sleep" yaml:"sleep"`
	Nutrition int    `json:"nutrition" yaml:"nutrition"`
}

func (input CycleRecordInput) ToRecord(location *time.Location) (models.CycleRecord, error) {
	start, err := parseInputDate(input.StartDate, location)
	if err != nil {
		return models.CycleRecord{}, fmt.Errorf("%w: startDate %v", ErrInvalidRecord, err)
	}
	if start.IsZero() {
		return models.CycleRecord{}, fmt.Errorf("%w: startDate is required", ErrInvalidRecord)
	}
	end, err := parseInputDate(input.EndDate, location)
	if err != nil {
		return models.CycleRecord{}, fmt.Errorf("%w: endDate %v", ErrInvalidRecord, err)
	}

	return models.CycleRecord{
		StartDate: start,
		EndDate:   end,
		Length:    input.Length,
		Symptoms:  input.Symptoms,
		PHIScore:  input.PHIScore,
	}, nil
}

func (input PHIScoreInput) ToScore(location *time.Location) (models.PHIScore, error) {
	date, err := parseInputDate(input.Date, location)
	if err != nil {
		return models.PHIScore{}, fmt.Errorf("%w: date %v", ErrInvalidPHIScore, err)
	}
	return models.PHIScore{
		Date:      date,
		Overall:   input.Overall,
		Physical:  input.Physical,
		Mental:    input.Mental,
		Sleep:     input.Sleep,
		Nutrition: input.Nutrition,
	}, nil
}

// parseInputDate returns the zero time for an empty value.
func parseInputDate(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, nil
	}
	parsed, err := time.ParseInLocation(exportDateLayout, trimmed, location)
	if err != nil {
		return time.Time{}, fmt.Errorf("must be YYYY-MM-DD, got %q", trimmed)
	}
	return parsed, nil
}
