package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/anskp/Flexi-Fit-sub001/internal/models/db_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/models/request_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/models/response_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/repositories"
	"github.com/anskp/Flexi-Fit-sub001/pkg/utils"
)

// roleRedirects maps a freshly selected role to its profile creation screen.
var roleRedirects = map[db_models.Role]string{
	db_models.RoleMember:         "/create-member-profile",
	db_models.RoleTrainer:        "/create-trainer-profile",
	db_models.RoleGymOwner:       "/create-gym-profile",
	db_models.RoleMultiGymMember: "/create-multi-gym-profile",
}

type ProfileServiceInterface interface {
	SelectRole(ctx context.Context, accountID uuid.UUID, role string) (*response_models.SelectRoleResponse, error)
	// CreateProfile provisions the role profile matching the payload's
	// concrete type. Trainer and gym payloads provision their plan rows in
	// the same transaction.
	CreateProfile(ctx context.Context, accountID uuid.UUID, payload request_models.ProfilePayload) (interface{}, error)
}

type ProfileService struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	resolver    OnboardingResolver
}

func NewProfileService(accountRepo repositories.AccountRepository, profileRepo repositories.ProfileRepository, resolver OnboardingResolver) ProfileServiceInterface {
	return &ProfileService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		resolver:    resolver,
	}
}

func (p *ProfileService) SelectRole(ctx context.Context, accountID uuid.UUID, role string) (*response_models.SelectRoleResponse, error) {
	normalized := db_models.Role(strings.ToUpper(strings.TrimSpace(role)))

	redirect, ok := roleRedirects[normalized]
	if !ok {
		return nil, utils.ErrInvalidRole
	}

	account, err := p.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	// Re-selection is only allowed while the previous role was never
	// provisioned; once a role profile exists the role is final.
	if account.Role != "" {
		needsOnboarding, err := p.resolver.NeedsOnboarding(ctx, account)
		if err != nil {
			return nil, err
		}
		if !needsOnboarding {
			return nil, utils.ErrForbidden
		}
	}

	if err := p.accountRepo.UpdateRole(ctx, accountID, normalized); err != nil {
		return nil, err
	}

	// Re-issue the token so the role claim reflects the new role. If this
	// fails after the role write committed, the client keeps a stale-role
	// token; that is tolerated because onboarding transitions never trust
	// the claim.
	token, err := utils.CreateToken(account.ID, account.Email, string(normalized), account.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &response_models.SelectRoleResponse{
		Token:      token,
		Role:       string(normalized),
		RedirectTo: redirect,
	}, nil
}

func (p *ProfileService) CreateProfile(ctx context.Context, accountID uuid.UUID, payload request_models.ProfilePayload) (interface{}, error) {
	var (
		created interface{}
		err     error
	)

	switch req := payload.(type) {
	case request_models.MemberProfileRequest:
		profile := &db_models.MemberProfile{
			AccountID: accountID,
			Age:       req.Age,
			Gender:    req.Gender,
			HeightCM:  req.HeightCM,
			WeightKG:  req.WeightKG,
			Goal:      req.Goal,
		}
		err = p.profileRepo.CreateMemberProfile(ctx, profile)
		created = profile

	case request_models.TrainerProfileRequest:
		profile := &db_models.TrainerProfile{
			AccountID:       accountID,
			Bio:             req.Bio,
			ExperienceYears: req.ExperienceYears,
			Gallery:         req.Gallery,
		}
		err = p.profileRepo.CreateTrainerProfile(ctx, profile, trainerPlansFrom(req.Plans))
		created = profile

	case request_models.GymProfileRequest:
		gym := &db_models.Gym{
			ManagerAccountID: accountID,
			Name:             req.Name,
			Address:          req.Address,
			Latitude:         req.Latitude,
			Longitude:        req.Longitude,
			Photos:           req.Photos,
			Facilities:       facilitiesJSON(req.Facilities),
		}
		err = p.profileRepo.CreateGym(ctx, gym, gymPlansFrom(req.Plans))
		created = gym

	case request_models.MultiGymProfileRequest:
		profile := &db_models.MultiGymMemberProfile{
			AccountID: accountID,
			HomeCity:  req.HomeCity,
			Age:       req.Age,
			Gender:    req.Gender,
		}
		err = p.profileRepo.CreateMultiGymProfile(ctx, profile)
		created = profile

	default:
		// The payload union is closed; reaching this means an integration
		// bug, not bad user input.
		return nil, utils.ErrInvalidProfileType
	}

	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, utils.ErrValidationFailure
		}
		// The account's unique index rejects a second profile of the same
		// kind; provisioning happens exactly once.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrForbidden
		}
		return nil, err
	}

	return created, nil
}

func trainerPlansFrom(inputs []request_models.PlanInput) []db_models.TrainerPlan {
	plans := make([]db_models.TrainerPlan, 0, len(inputs))
	for _, in := range inputs {
		plans = append(plans, db_models.TrainerPlan{
			Name:         in.Name,
			Description:  in.Description,
			DurationDays: in.DurationDays,
			PriceMinor:   in.PriceMinor,
			Currency:     currencyOrDefault(in.Currency),
		})
	}
	return plans
}

func gymPlansFrom(inputs []request_models.PlanInput) []db_models.GymPlan {
	plans := make([]db_models.GymPlan, 0, len(inputs))
	for _, in := range inputs {
		plans = append(plans, db_models.GymPlan{
			Name:         in.Name,
			Description:  in.Description,
			DurationDays: in.DurationDays,
			PriceMinor:   in.PriceMinor,
			Currency:     currencyOrDefault(in.Currency),
		})
	}
	return plans
}

func facilitiesJSON(facilities []string) datatypes.JSON {
	if len(facilities) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	raw, err := json.Marshal(facilities)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return "USD"
	}
	return strings.ToUpper(currency)
}
