package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Role profiles are owned 1:1 by an Account and exist iff onboarding for
// that role is complete. Each is created exactly once by provisioning.

type MemberProfile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex"`
	Age       int32
	Gender    string
	HeightCM  float64
	WeightKG  float64
	Goal      string

	Account Account `gorm:"foreignKey:AccountID"`
}

type TrainerProfile struct {
	BaseModel
	AccountID       uuid.UUID `gorm:"uniqueIndex"`
	Bio             string
	ExperienceYears int32
	Gallery         pq.StringArray `gorm:"type:text[]"`

	Account Account       `gorm:"foreignKey:AccountID"`
	Plans   []TrainerPlan `gorm:"foreignKey:TrainerProfileID"`
}

type Gym struct {
	BaseModel
	ManagerAccountID uuid.UUID `gorm:"uniqueIndex"`
	Name             string
	Address          string
	Latitude         float64
	Longitude        float64
	Photos           pq.StringArray `gorm:"type:text[]"`
	Facilities       datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	Manager Account   `gorm:"foreignKey:ManagerAccountID"`
	Plans   []GymPlan `gorm:"foreignKey:GymID"`
}

type MultiGymMemberProfile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex"`
	HomeCity  string
	Age       int32
	Gender    string

	Account Account `gorm:"foreignKey:AccountID"`
}
