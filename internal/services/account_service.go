package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/anskp/Flexi-Fit-sub001/internal/models/db_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/models/request_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/models/response_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/repositories"
	"github.com/anskp/Flexi-Fit-sub001/pkg/utils"
)

const resetTokenTTL = time.Hour

type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.SignUpResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	LoginWithGoogle(ctx context.Context, request request_models.GoogleLoginRequest) (*response_models.LoginResponse, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, accountID uuid.UUID, oldPassword, newPassword string) error
	GetAccount(ctx context.Context, accountID uuid.UUID) (*response_models.AccountView, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	resolver    OnboardingResolver
	mailService IMailService
}

func NewAccountService(accountRepo repositories.AccountRepository, resolver OnboardingResolver, mailService IMailService) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		resolver:    resolver,
		mailService: mailService,
	}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.SignUpResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrDuplicateAccount
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Provider:     db_models.ProviderLocal,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		// The pre-insert lookup races with concurrent signups; the unique
		// index on email is the authoritative check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDuplicateAccount
		}
		return nil, err
	}

	token, err := utils.CreateToken(account.ID, account.Email, string(account.Role), account.IsAdmin)
	if err != nil {
		return nil, err
	}

	// Role is always unset at creation, so the redirect is unconditional.
	return &response_models.SignUpResponse{
		Token:      token,
		RedirectTo: RedirectSelectRole,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and social-only account produce the same error so the
	// response does not reveal which case it was.
	if account == nil || !account.HasPassword() {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.buildLoginResponse(ctx, account)
}

func (a *AccountService) LoginWithGoogle(ctx context.Context, request request_models.GoogleLoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByGoogleID(ctx, request.GoogleID)
	if err != nil {
		return nil, err
	}

	if account == nil {
		email := request.Email
		if email == "" {
			// Provider withheld the email. Synthesize a placeholder rather
			// than failing the login; flagged loudly as a data-quality risk.
			email = fmt.Sprintf("google-%s@users.noreply.flexifit.app", request.GoogleID)
			log.Printf("google login without email, using placeholder for subject %s", request.GoogleID)
		}

		googleID := request.GoogleID
		account = &db_models.Account{
			Name:     request.Name,
			Email:    email,
			Provider: db_models.ProviderGoogle,
			GoogleID: &googleID,
		}
		if err := a.accountRepo.Insert(ctx, account); err != nil {
			// A local account may already own this email address.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, utils.ErrDuplicateAccount
			}
			return nil, err
		}
	}

	return a.buildLoginResponse(ctx, account)
}

// buildLoginResponse issues a fresh token reflecting the account's current
// role and resolves the onboarding redirect from storage.
func (a *AccountService) buildLoginResponse(ctx context.Context, account *db_models.Account) (*response_models.LoginResponse, error) {
	needsOnboarding, err := a.resolver.NeedsOnboarding(ctx, account)
	if err != nil {
		return nil, err
	}

	token, err := utils.CreateToken(account.ID, account.Email, string(account.Role), account.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &response_models.LoginResponse{
		Token:      token,
		Account:    response_models.NewAccountView(account),
		RedirectTo: RedirectFor(needsOnboarding),
	}, nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return "", err
	}

	expiresAt := time.Now().Add(resetTokenTTL).Unix()
	if err := a.accountRepo.SetResetToken(ctx, account.ID, token, expiresAt); err != nil {
		return "", err
	}

	// Delivery failures don't invalidate the stored token; the user can
	// retry the request.
	if err := a.mailService.SendPasswordResetMail(account.Email, token); err != nil {
		log.Printf("failed to send password reset mail to %s: %v", account.Email, err)
	}

	return token, nil
}

func (a *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	account, err := a.accountRepo.FindByValidResetToken(ctx, token, time.Now().Unix())
	if err != nil {
		return err
	}
	if account == nil {
		return utils.ErrTokenInvalidOrExpired
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return a.accountRepo.ResetPassword(ctx, account.ID, hashedPassword)
}

func (a *AccountService) ChangePassword(ctx context.Context, accountID uuid.UUID, oldPassword, newPassword string) error {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil || !account.HasPassword() {
		return utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, oldPassword); err != nil {
		return utils.ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return a.accountRepo.UpdatePasswordHash(ctx, account.ID, hashedPassword)
}

func (a *AccountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*response_models.AccountView, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	view := response_models.NewAccountView(account)
	return &view, nil
}
