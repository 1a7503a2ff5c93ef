package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/terraincognita07/cycleadvisor/internal/models"
	"github.com/terraincognita07/cycleadvisor/internal/services"
	"gopkg.in/yaml.v3"
)

var ErrEmptyImport = errors.New("import file has no cycles or phi scores")

// ImportDocument is the file format accepted by the import command.
type ImportDocument struct {
	CycleHistory []services.CycleRecordInput `json:"cycleHistory" yaml:"cycleHistory"`
	PHI          []services.PHIScoreInput    `json:"phi" yaml:"phi"`
}

type ImportResult struct {
	Cycles    int
	PHIScores int
}

type CycleImporter interface {
	ImportRecords(ctx context.Context, userID uint, records []models.CycleRecord) (int, error)
}

type PHIRecorder interface {
	RecordScore(ctx context.Context, userID uint, score models.PHIScore) (models.PHIScore, error)
}

// ReadImportFile decodes .yaml and .yml files as YAML and anything else as
// JSON.
func ReadImportFile(path string) (ImportDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return ImportDocument{}, fmt.Errorf("open import file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeImportYAML(file)
	default:
		return DecodeImportDocument(file)
	}
}

func DecodeImportDocument(r io.Reader) (ImportDocument, error) {
	document := ImportDocument{}
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&document); err != nil {
		return ImportDocument{}, fmt.Errorf("decode import file: %w", err)
	}
	return checkImportDocument(document)
}

func DecodeImportYAML(r io.Reader) (ImportDocument, error) {
	document := ImportDocument{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&document); err != nil {
		if errors.Is(err, io.EOF) {
			return ImportDocument{}, ErrEmptyImport
		}
		return ImportDocument{}, fmt.Errorf("decode import file: %w", err)
	}
	return checkImportDocument(document)
}

func checkImportDocument(document ImportDocument) (ImportDocument, error) {
	if len(document.CycleHistory) == 0 && len(document.PHI) == 0 {
		return ImportDocument{}, ErrEmptyImport
	}
	return document, nil
}

// RunImport parses every entry before writing anything. Cycles are written
// in one batch; PHI scores are upserted day by day.
func RunImport(ctx context.Context, cycles CycleImporter, phi PHIRecorder, userID uint, document ImportDocument, location *time.Location) (ImportResult, error) {
	records := make([]models.CycleRecord, 0, len(document.CycleHistory))
	for index, input := range document.CycleHistory {
		record, err := input.ToRecord(location)
		if err != nil {
			return ImportResult{}, fmt.Errorf("cycleHistory[%d]: %w", index, err)
		}
		records = append(records, record)
	}

	scores := make([]models.PHIScore, 0, len(document.PHI))
	for index, input := range document.PHI {
		score, err := input.ToScore(location)
		if err != nil {
			return ImportResult{}, fmt.Errorf("phi[%d]: %w", index, err)
		}
		if err := services.ValidatePHIScore(score); err != nil {
			return ImportResult{}, fmt.Errorf("phi[%d]: %w", index, err)
		}
		scores = append(scores, score)
	}

	result := ImportResult{}
	if len(records) > 0 {
		imported, err := cycles.ImportRecords(ctx, userID, records)
		if err != nil {
			return ImportResult{}, err
		}
		result.Cycles = imported
	}
	for index, score := range scores {
		if _, err := phi.RecordScore(ctx, userID, score); err != nil {
			return result, fmt.Errorf("phi[%d]: %w", index, err)
		}
		result.PHIScores++
	}
	return result, nil
}
