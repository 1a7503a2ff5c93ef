package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/cycleadvisor/internal/services"
)

const (
	shareLookupFailureLimit  = 10
	shareLookupFailureWindow = 15 * time.Minute
)

type Handler struct {
	accounts     *services.AccountService
	cycles       *services.CycleRecordService
	phi          *services.PHIService
	analysis     *services.AnalysisService
	exports      *services.ExportService
	shares       *services.SummaryShareService
	location     *time.Location
	now          func() time.Time
	shareLimiter *attemptLimiter
}

func NewHandler(deps Dependencies) (*Handler, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	location := deps.Location
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		accounts:     deps.Accounts,
		cycles:       deps.Cycles,
		phi:          deps.PHI,
		analysis:     deps.Analysis,
		exports:      deps.Exports,
		shares:       deps.Shares,
		location:     location,
		now:          time.Now,
		shareLimiter: newAttemptLimiter(),
	}, nil
}

func (handler *Handler) today() time.Time {
	return handler.now().In(handler.location)
}

var errMissingDependency = errors.New("missing handler dependency")
