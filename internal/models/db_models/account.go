package db_models

// Role is set at most once per account via role selection. An empty value
// means the account has not picked a role yet and must be sent through
// onboarding.
type Role string

const (
	RoleMember         Role = "MEMBER"
	RoleTrainer        Role = "TRAINER"
	RoleGymOwner       Role = "GYM_OWNER"
	RoleMultiGymMember Role = "MULTI_GYM_MEMBER"
	RoleAdmin          Role = "ADMIN"
)

// SelectableRoles are the roles a user may pick during onboarding.
// ADMIN is assigned out-of-band, never through role selection.
var SelectableRoles = []Role{RoleMember, RoleTrainer, RoleGymOwner, RoleMultiGymMember}

type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string // empty for social-only accounts
	Provider     AuthProvider
	Role         Role `gorm:"index"`
	IsAdmin      bool `gorm:"default:false"`

	// External identity (Google sign-in). Nil for local accounts.
	GoogleID *string `gorm:"uniqueIndex"`

	// Single-use password reset token. Cleared atomically with the
	// password update so the token cannot be replayed.
	ResetToken          *string `gorm:"uniqueIndex"`
	ResetTokenExpiresAt *int64
}

// HasPassword reports whether password login is possible for this account.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != ""
}
