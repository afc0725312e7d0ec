package request_models

// ProfilePayload is a closed set: exactly the four role-profile request
// shapes implement it. Profile provisioning switches over the concrete
// types, so an unknown payload is a programmer error, not user input.
type ProfilePayload interface {
	profilePayload()
}

type PlanInput struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DurationDays int32  `json:"duration_days" binding:"required,gt=0"`
	PriceMinor   int64  `json:"price_minor" binding:"required,gte=0"`
	Currency     string `json:"currency" binding:"omitempty,len=3"`
}

type MemberProfileRequest struct {
	Age      int32   `json:"age" binding:"required,gt=0"`
	Gender   string  `json:"gender"`
	HeightCM float64 `json:"height_cm" binding:"omitempty,gt=0"`
	WeightKG float64 `json:"weight_kg" binding:"omitempty,gt=0"`
	Goal     string  `json:"goal"`
}

type TrainerProfileRequest struct {
	Bio             string      `json:"bio" binding:"required"`
	ExperienceYears int32       `json:"experience_years" binding:"gte=0"`
	Gallery         []string    `json:"gallery"`
	Plans           []PlanInput `json:"plans" binding:"dive"`
}

type GymProfileRequest struct {
	Name       string      `json:"name" binding:"required"`
	Address    string      `json:"address" binding:"required"`
	Latitude   float64     `json:"latitude"`
	Longitude  float64     `json:"longitude"`
	Photos     []string    `json:"photos"`
	Facilities []string    `json:"facilities"`
	Plans      []PlanInput `json:"plans" binding:"dive"`
}

type MultiGymProfileRequest struct {
	HomeCity string `json:"home_city" binding:"required"`
	Age      int32  `json:"age" binding:"omitempty,gt=0"`
	Gender   string `json:"gender"`
}

func (MemberProfileRequest) profilePayload()   {}
func (TrainerProfileRequest) profilePayload()  {}
func (GymProfileRequest) profilePayload()      {}
func (MultiGymProfileRequest) profilePayload() {}
