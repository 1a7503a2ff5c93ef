package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	CycleRecords *CycleRecordRepository
	PHIScores    *PHIScoreRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		CycleRecords: NewCycleRecordRepository(database),
		PHIScores:    NewPHIScoreRepository(database),
	}
}
