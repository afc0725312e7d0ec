package response_models

import (
	"github.com/google/uuid"

	"github.com/anskp/Flexi-Fit-sub001/internal/models/db_models"
)

// AccountView is the externally visible account shape. The password hash
// never leaves the service layer.
type AccountView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Provider string    `json:"provider"`
	Role     string    `json:"role,omitempty"`
	IsAdmin  bool      `json:"is_admin"`
}

func NewAccountView(a *db_models.Account) AccountView {
	return AccountView{
		ID:       a.ID,
		Name:     a.Name,
		Email:    a.Email,
		Provider: string(a.Provider),
		Role:     string(a.Role),
		IsAdmin:  a.IsAdmin,
	}
}

type SignUpResponse struct {
	Token      string `json:"token"`
	RedirectTo string `json:"redirect_to"`
}

type LoginResponse struct {
	Token      string      `json:"token"`
	Account    AccountView `json:"account"`
	RedirectTo string      `json:"redirect_to"`
}

type SelectRoleResponse struct {
	Token      string `json:"token"`
	Role       string `json:"role"`
	RedirectTo string `json:"redirect_to"`
}

// ForgotPasswordResponse echoes the reset token only outside production;
// in production the token travels out-of-band via mail.
type ForgotPasswordResponse struct {
	ResetToken string `json:"reset_token,omitempty"`
}
