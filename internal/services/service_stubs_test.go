package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/terraincognita07/cycleadvisor/internal/models"
)

var errStubFailure = errors.New("stub failure")

type stubUserRepo struct {
	mu      sync.Mutex
	users   map[uint]models.User
	nextID  uint
	findErr error
}

func newStubUserRepo(ids ...uint) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[uint]models.User)}
	for _, id := range ids {
		repo.users[id] = models.User{ID: id}
		if id > repo.nextID {
			repo.nextID = id
		}
	}
	return repo
}

func (repo *stubUserRepo) FindByID(_ context.Context, userID uint) (models.User, bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.findErr != nil {
		return models.User{}, false, repo.findErr
	}
	user, ok := repo.users[userID]
	return user, ok, nil
}

func (repo *stubUserRepo) Create(_ context.Context, user *models.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.nextID++
	user.ID = repo.nextID
	repo.users[user.ID] = *user
	return nil
}

func (repo *stubUserRepo) ListIDs(context.Context) ([]uint, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	ids := make([]uint, 0, len(repo.users))
	for id := range repo.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type stubCycleRecordRepo struct {
	mu         sync.Mutex
	records    []models.CycleRecord
	batchCalls int
}

func (repo *stubCycleRecordRepo) ListByUserNewestFirst(_ context.Context, userID uint) ([]models.CycleRecord, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	result := make([]models.CycleRecord, 0)
	for _, record := range repo.records {
		if record.UserID == userID {
			result = append(result, record)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].StartDate.After(result[j].StartDate) })
	return result, nil
}

func (repo *stubCycleRecordRepo) Create(_ context.Context, record *models.CycleRecord) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	record.ID = uint(len(repo.records) + 1)
	repo.records = append(repo.records, *record)
	return nil
}

func (repo *stubCycleRecordRepo) CreateBatch(_ context.Context, records []models.CycleRecord) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.batchCalls++
	for _, record := range records {
		record.ID = uint(len(repo.records) + 1)
		repo.records = append(repo.records, record)
	}
	return nil
}

type stubPHIScoreRepo struct {
	mu      sync.Mutex
	scores  []models.PHIScore
	listErr error
}

func (repo *stubPHIScoreRepo) ListRecentByUser(_ context.Context, userID uint, limit int) ([]models.PHIScore, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.listErr != nil {
		return nil, repo.listErr
	}
	result := make([]models.PHIScore, 0)
	for _, score := range repo.scores {
		if score.UserID == userID {
			result = append(result, score)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	if len(result) > limit {
		result = result[len(result)-limit:]
	}
	return result, nil
}

func (repo *stubPHIScoreRepo) Upsert(_ context.Context, score *models.PHIScore) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for index, existing := range repo.scores {
		if existing.UserID == score.UserID && existing.Date.Equal(score.Date) {
			score.ID = existing.ID
			repo.scores[index] = *score
			return nil
		}
	}
	score.ID = uint(len(repo.scores) + 1)
	repo.scores = append(repo.scores, *score)
	return nil
}

type stubHistoryLoader struct {
	history CycleHistory
	err     error
}

func (loader stubHistoryLoader) History(context.Context, uint) (CycleHistory, error) {
	return loader.history, loader.err
}

type stubSnapshotLoader struct {
	snapshot PHISnapshot
	err      error
}

func (loader stubSnapshotLoader) Snapshot(context.Context, uint) (PHISnapshot, error) {
	return loader.snapshot, loader.err
}

type recordingNotifier struct {
	mu        sync.Mutex
	reminders []Reminder
	err       error
}

func (notifier *recordingNotifier) Notify(_ context.Context, reminder Reminder) error {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if notifier.err != nil {
		return notifier.err
	}
	notifier.reminders = append(notifier.reminders, reminder)
	return nil
}

type stubReminderAnalyzer struct {
	byUser map[uint]CycleHistory
}

func (analyzer stubReminderAnalyzer) Analyze(_ context.Context, userID uint, referenceDate time.Time) (Analysis, CycleHistory, error) {
	history, ok := analyzer.byUser[userID]
	if !ok {
		return Analysis{}, nil, errStubFailure
	}
	return Analyze(history, PHISnapshot{}, referenceDate), history, nil
}
