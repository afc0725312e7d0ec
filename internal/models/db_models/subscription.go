package db_models

import "github.com/google/uuid"

type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusCanceled SubscriptionStatus = "canceled"
	SubStatusExpired  SubscriptionStatus = "expired"
)

type TrainerSubscription struct {
	BaseModel
	TrainerPlanID   uuid.UUID `gorm:"index"`
	MemberAccountID uuid.UUID `gorm:"index"`

	Status   SubscriptionStatus `gorm:"index"`
	StartsAt int64              `gorm:"not null"`
	EndsAt   int64              `gorm:"not null"`

	Plan   TrainerPlan `gorm:"foreignKey:TrainerPlanID"`
	Member Account     `gorm:"foreignKey:MemberAccountID"`
}

type GymSubscription struct {
	BaseModel
	GymPlanID       uuid.UUID `gorm:"index"`
	MemberAccountID uuid.UUID `gorm:"index"`

	Status   SubscriptionStatus `gorm:"index"`
	StartsAt int64              `gorm:"not null"`
	EndsAt   int64              `gorm:"not null"`

	Plan   GymPlan `gorm:"foreignKey:GymPlanID"`
	Member Account `gorm:"foreignKey:MemberAccountID"`
}
