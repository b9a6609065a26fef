package account

import (
	"time"

	"github.com/google/uuid"
)

// Account covers registered users, staff and implicitly provisioned guests
// alike. Guests get a generated password and the default "user" role.
type Account struct {
	id           uuid.UUID
	name         string
	email        Email
	phone        string
	passwordHash string
	role         Role
	avatarURL    string
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewGuest(name string, email Email, phone, passwordHash, avatarURL string) *Account {
	return &Account{
		id:           uuid.New(),
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         RoleUser,
		avatarURL:    avatarURL,
		isActive:     true,
	}
}

func (a *Account) ID() uuid.UUID         { return a.id }
func (a *Account) Name() string          { return a.name }
func (a *Account) Email() Email          { return a.email }
func (a *Account) Phone() string         { return a.phone }
func (a *Account) PasswordHash() string  { return a.passwordHash }
func (a *Account) Role() Role            { return a.role }
func (a *Account) AvatarURL() string     { return a.avatarURL }
func (a *Account) IsActive() bool        { return a.isActive }
func (a *Account) LastLogin() *time.Time { return a.lastLogin }
func (a *Account) CreatedAt() time.Time  { return a.createdAt }
func (a *Account) UpdatedAt() time.Time  { return a.updatedAt }
