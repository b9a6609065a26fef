package usecase

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"

	"courtdesk/internal/domain/account"
	"courtdesk/internal/infra"
	"courtdesk/internal/infra/db"
	"courtdesk/internal/pkg/errs"
	"courtdesk/internal/pkg/password"
	"courtdesk/internal/pkg/phone"
	"courtdesk/internal/usecase/readmodel"
)

var (
	ErrInvalidGuestEmail = errs.New("invalid guest email")
	ErrInvalidGuestPhone = errs.New("invalid guest phone number")
)

// Contact is what a guest booking carries: any subset of the three fields.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// ProvisionedAccount is the resolver result. RawPassword is only set when a
// new account was created; it is handed to the welcome mail and never stored.
type ProvisionedAccount struct {
	Account     *readmodel.AccountRM
	Created     bool
	RawPassword string
}

// AccountProvisioner resolves a guest contact to an account inside the
// caller's transaction. A contact without email or phone resolves to nil
// (anonymous booking), as does a phone-only contact with no existing match.
type AccountProvisioner interface {
	Resolve(ctx context.Context, tx db.DBTX, contact Contact) (*ProvisionedAccount, error)
}

// Placeholder avatars assigned round-robin-by-chance to provisioned guests.
var guestAvatars = []string{
	"/avatars/default-01.png",
	"/avatars/default-02.png",
	"/avatars/default-03.png",
	"/avatars/default-04.png",
	"/avatars/default-05.png",
}

type accountProvisionerImpl struct {
	accountRepo   AccountRepository
	defaultRegion string
}

func NewAccountProvisioner(accountRepo AccountRepository, defaultRegion string) AccountProvisioner {
	return &accountProvisionerImpl{
		accountRepo:   accountRepo,
		defaultRegion: defaultRegion,
	}
}

func (p *accountProvisionerImpl) Resolve(ctx context.Context, tx db.DBTX, contact Contact) (*ProvisionedAccount, error) {
	if contact.Email == "" && contact.Phone == "" {
		return nil, nil
	}

	normalizedPhone, err := p.normalizePhone(contact.Phone)
	if err != nil {
		return nil, err
	}

	existing, err := p.accountRepo.FindByEmailOrPhone(ctx, tx, contact.Email, normalizedPhone)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Wrap(err, "failed to look up guest account")
	}

	if existing != nil {
		// Refresh mutable contact fields; email is the identity and stays.
		if contactDiffers(existing, contact.Name, normalizedPhone) {
			if err := p.accountRepo.UpdateContact(ctx, tx, existing.ID, contact.Name, normalizedPhone); err != nil {
				return nil, errs.Wrap(err, "failed to update guest contact")
			}
		}
		return &ProvisionedAccount{Account: existing}, nil
	}

	// Without an email there is nothing to log in with later, so a phone-only
	// miss stays anonymous rather than creating an unreachable account.
	if contact.Email == "" {
		return nil, nil
	}

	return p.create(ctx, tx, contact.Name, contact.Email, normalizedPhone)
}

func (p *accountProvisionerImpl) create(ctx context.Context, tx db.DBTX, name, email, normalizedPhone string) (*ProvisionedAccount, error) {
	emailVO, err := account.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidGuestEmail)
	}

	rawPassword, err := password.Generate(password.GeneratedLength)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate guest password")
	}
	hash, err := password.HashPassword(rawPassword)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash guest password")
	}

	guest := account.NewGuest(name, emailVO, normalizedPhone, hash, pickAvatar())
	rm, err := p.accountRepo.Create(ctx, tx, guest)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create guest account")
	}

	slog.Info("provisioned guest account", "account_id", rm.ID)

	return &ProvisionedAccount{Account: rm, Created: true, RawPassword: rawPassword}, nil
}

func (p *accountProvisionerImpl) normalizePhone(raw string) (string, error) {
	normalized, err := phone.Normalize(raw, p.defaultRegion)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidGuestPhone)
	}
	return normalized, nil
}

func contactDiffers(existing *readmodel.AccountRM, name, normalizedPhone string) bool {
	if name != "" && existing.Name != name {
		return true
	}
	if normalizedPhone != "" && (existing.Phone == nil || *existing.Phone != normalizedPhone) {
		return true
	}
	return false
}

func pickAvatar() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(guestAvatars))))
	if err != nil {
		return guestAvatars[0]
	}
	return guestAvatars[n.Int64()]
}
