package db_models

import "github.com/google/uuid"

// Priced offerings. TrainerPlan rows belong to a TrainerProfile, GymPlan
// rows to a Gym; both are bulk-inserted inside the owning profile's
// provisioning transaction.

type TrainerPlan struct {
	BaseModel
	TrainerProfileID uuid.UUID `gorm:"index"`
	Name             string
	Description      string
	DurationDays     int32
	PriceMinor       int64  // 4999 = $49.99
	Currency         string `gorm:"size:3;default:'USD'"`
}

type GymPlan struct {
	BaseModel
	GymID        uuid.UUID `gorm:"index"`
	Name         string
	Description  string
	DurationDays int32
	PriceMinor   int64
	Currency     string `gorm:"size:3;default:'USD'"`
}
