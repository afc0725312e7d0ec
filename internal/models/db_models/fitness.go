package db_models

import "github.com/google/uuid"

// Raw fitness data feeding the member dashboard. All timestamps are unix
// seconds; Day on StepRecord is the midnight of the local day so one row
// exists per account per day.

type StepRecord struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index:idx_step_account_day,unique"`
	Day       int64     `gorm:"index:idx_step_account_day,unique"`
	Steps     int64
}

type WorkoutSession struct {
	BaseModel
	AccountID       uuid.UUID `gorm:"index"`
	WorkoutType     string
	DurationMinutes int64
	PerformedAt     int64 `gorm:"index"`
}

type MealLog struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	Name      string
	Calories  float64
	ProteinG  float64
	CarbsG    float64
	FatG      float64
	EatenAt   int64 `gorm:"index"`
}

// TrainingAssignment is a training-plan window a trainer assigned to a
// member. The member dashboard lists windows that have not yet ended.
type TrainingAssignment struct {
	BaseModel
	AccountID        uuid.UUID `gorm:"index"`
	TrainerProfileID uuid.UUID `gorm:"index"`
	Title            string
	StartsAt         int64
	EndsAt           int64
}

type GymCheckIn struct {
	BaseModel
	GymID       uuid.UUID `gorm:"index"`
	AccountID   uuid.UUID `gorm:"index"`
	CheckedInAt int64     `gorm:"index"`
}
