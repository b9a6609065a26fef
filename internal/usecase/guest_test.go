//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"courtdesk/internal/domain/account"
	"courtdesk/internal/infra"
	"courtdesk/internal/infra/db"
	"courtdesk/internal/usecase"
	usecasemock "courtdesk/internal/usecase/mock"
	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccountProvisionerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	accounts    *usecasemock.MockAccountRepository
	provisioner usecase.AccountProvisioner
}

func TestAccountProvisionerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountProvisionerTestSuite))
}

func (s *AccountProvisionerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accounts = usecasemock.NewMockAccountRepository(s.ctrl)
	s.provisioner = usecase.NewAccountProvisioner(s.accounts, "FR")
}

func (s *AccountProvisionerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AccountProvisionerTestSuite) TestResolve() {
	notFound := infra.RepositoryError{Kind: infra.KindNotFound}

	s.Run("no contact details resolves to anonymous", func() {
		s.SetupTest()
		got, err := s.provisioner.Resolve(context.Background(), nil, usecase.Contact{Name: "Walk-in"})
		s.Require().NoError(err)
		s.Nil(got)
	})

	s.Run("existing account matched by email", func() {
		s.SetupTest()
		existing := &readmodel.AccountRM{ID: uuid.New(), Name: "Jean Dupont", Email: "jean@example.com"}
		s.accounts.EXPECT().FindByEmailOrPhone(gomock.Any(), gomock.Any(), "jean@example.com", "").
			Return(existing, nil)

		got, err := s.provisioner.Resolve(context.Background(), nil, usecase.Contact{Name: "Jean Dupont", Email: "jean@example.com"})
		s.Require().NoError(err)
		s.Require().NotNil(got)
		s.Equal(existing.ID, got.Account.ID)
		s.False(got.Created)
		s.Empty(got.RawPassword)
	})

	s.Run("changed contact details are refreshed on match", func() {
		s.SetupTest()
		oldPhone := "+33611111111"
		existing := &readmodel.AccountRM{ID: uuid.New(), Name: "Jean Dupont", Email: "jean@example.com", Phone: &oldPhone}
		s.accounts.EXPECT().FindByEmailOrPhone(gomock.Any(), gomock.Any(), "jean@example.com", "+33612345678").
			Return(existing, nil)
		s.accounts.EXPECT().UpdateContact(gomock.Any(), gomock.Any(), existing.ID, "Jean Dupont", "+33612345678").
			Return(nil)

		got, err := s.provisioner.Resolve(context.Background(), nil, usecase.Contact{
			Name:  "Jean Dupont",
			Email: "jean@example.com",
			Phone: "06 12 34 56 78",
		})
		s.Require().NoError(err)
		s.False(got.Created)
	})

	s.Run("unchanged contact details skip the update", func() {
		s.SetupTest()
		phone := "+33612345678"
		existing := &readmodel.AccountRM{ID: uuid.New(), Name: "Jean Dupont", Email: "jean@example.com", Phone: &phone}
		s.accounts.EXPECT().FindByEmailOrPhone(gomock.Any(), gomock.Any(), "jean@example.com", "+33612345678").
			Return(existing, nil)

		_, err := s.provisioner.Resolve(context.Background(), nil, usecase.Contact{
			Name:  "Jean Dupont",
			Email: "jean@example.com",
			Phone: "0612345678",
		})
		s.Require().NoError(err)
	})

	s.Run("email miss creates a guest account with a generated password", func() {
		s.SetupTest()
		s.accounts.EXPECT().FindByEmailOrPhone(gomock.Any(), gomock.Any(), "new@example.com", "").
			Return(nil, notFound)
		s.accounts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, acc *account.Account) (*readmodel.AccountRM, error) {
				s.Equal("new@example.com", acc.Email().Value())
				s.Equal(account.RoleUser, acc.Role())
				s.True(acc.IsActive())
				s.NotEmpty(acc.PasswordHash())
				return &readmodel.AccountRM{ID: acc.ID(), Name: acc.Name(), Email: "new@example.com"}, nil
			})

		got, err := s.provisioner.Resolve(context.Background(), nil, usecase.Contact{Name: "New Guest", Email: "new@example.com"})
		s.Require().NoError(err)
		s.Require().NotNil(got)
		s.True(got.Created)
		s.NotEmpty(got.RawPassword)
	})

	s.Run("phone-only miss stays anonymous", func() {
		s.SetupTest()
		s.accounts.EXPECT().FindByEmailOrPhone(gomock.Any(), gomock.Any(), "", "+33612345678").
			Return(nil, notFound)

		got, err := s.provisioner.Resolve(context.Background(), nil, usecase.Contact{Name: "Caller", Phone: "0612345678"})
		s.Require().NoError(err)
		s.Nil(got)
	})

	s.Run("invalid phone", func() {
		s.SetupTest()
		_, err := s.provisioner.Resolve(context.Background(), nil, usecase.Contact{Phone: "not a number"})
		s.Require().ErrorIs(err, usecase.ErrInvalidGuestPhone)
	})

	s.Run("invalid email", func() {
		s.SetupTest()
		s.accounts.EXPECT().FindByEmailOrPhone(gomock.Any(), gomock.Any(), "not-an-email", "").
			Return(nil, notFound)

		_, err := s.provisioner.Resolve(context.Background(), nil, usecase.Contact{Email: "not-an-email"})
		s.Require().ErrorIs(err, usecase.ErrInvalidGuestEmail)
	})
}
