package api

import (
	"fmt"
	"time"

	"github.com/terraincognita07/cycleadvisor/internal/db"
	"github.com/terraincognita07/cycleadvisor/internal/services"
)

// Dependencies lists the services the HTTP layer calls into.
type Dependencies struct {
	Accounts *services.AccountService
	Cycles   *services.CycleRecordService
	PHI      *services.PHIService
	Analysis *services.AnalysisService
	Exports  *services.ExportService
	Shares   *services.SummaryShareService
	Location *time.Location
}

// ServiceOptions carries the tunables that come from configuration.
type ServiceOptions struct {
	Location      *time.Location
	PHITrendDays  int
	SecretKey     []byte
	ShareTokenTTL time.Duration
}

// NewDependencies wires every service over the SQLite repositories.
func NewDependencies(repositories *db.Repositories, options ServiceOptions) Dependencies {
	accounts := services.NewAccountService(repositories.Users)
	cycles := services.NewCycleRecordService(accounts, repositories.CycleRecords, options.Location)
	phi := services.NewPHIService(accounts, repositories.PHIScores, options.PHITrendDays, options.Location)
	analysis := services.NewAnalysisService(cycles, phi)

	return Dependencies{
		Accounts: accounts,
		Cycles:   cycles,
		PHI:      phi,
		Analysis: analysis,
		Exports:  services.NewExportService(analysis),
		Shares:   services.NewSummaryShareService(options.SecretKey, options.ShareTokenTTL),
		Location: options.Location,
	}
}

func (deps Dependencies) validate() error {
	switch {
	case deps.Accounts == nil:
		return fmt.Errorf("%w: accounts", errMissingDependency)
	case deps.Cycles == nil:
		return fmt.Errorf("%w: cycles", errMissingDependency)
	case deps.PHI == nil:
		return fmt.Errorf("%w: phi", errMissingDependency)
	case deps.Analysis == nil:
		return fmt.Errorf("%w: analysis", errMissingDependency)
	case deps.Exports == nil:
		return fmt.Errorf("%w: exports", errMissingDependency)
	case deps.Shares == nil:
		return fmt.Errorf("%w: shares", errMissingDependency)
	}
	return nil
}
