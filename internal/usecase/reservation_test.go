//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"courtdesk/internal/domain/reservation"
	"courtdesk/internal/infra"
	"courtdesk/internal/infra/db"
	"courtdesk/internal/pkg/clock"
	"courtdesk/internal/usecase"
	usecasemock "courtdesk/internal/usecase/mock"
	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationUseCaseTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	reservations *usecasemock.MockReservationRepository
	facilities   *usecasemock.MockFacilityRepository
	provisioner  *usecasemock.MockAccountProvisioner
	tx           *usecasemock.MockTxManager
	mailer       *usecasemock.MockMailer
	clock        *clock.MockClock
	uc           usecase.ReservationUseCase
}

func TestReservationUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationUseCaseTestSuite))
}

var reservationTestNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func (s *ReservationUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reservations = usecasemock.NewMockReservationRepository(s.ctrl)
	s.facilities = usecasemock.NewMockFacilityRepository(s.ctrl)
	s.provisioner = usecasemock.NewMockAccountProvisioner(s.ctrl)
	s.tx = usecasemock.NewMockTxManager(s.ctrl)
	s.mailer = usecasemock.NewMockMailer(s.ctrl)
	s.clock = clock.NewMockClock(reservationTestNow)
	s.uc = usecase.NewReservationUseCase(s.reservations, s.facilities, s.provisioner, s.tx, s.mailer, s.clock)
}

func (s *ReservationUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectTx makes the transaction manager run the closure with a nil handle.
func (s *ReservationUseCaseTestSuite) expectTx() {
	s.tx.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
}

func (s *ReservationUseCaseTestSuite) expectActiveFacility(facilityID uuid.UUID) {
	s.facilities.EXPECT().FindByID(gomock.Any(), gomock.Any(), facilityID).
		Return(&readmodel.FacilityRM{ID: facilityID, Name: "Court 1", IsActive: true, PriceCents: 2500}, nil)
}

func reservationRM(id, facilityID uuid.UUID, accountID *uuid.UUID, status string) *readmodel.ReservationRM {
	return &readmodel.ReservationRM{
		ID:           id,
		Code:         "RES-20250602-ABCDE",
		FacilityID:   facilityID,
		FacilityName: "Court 1",
		AccountID:    accountID,
		Day:          "2025-06-02",
		Time:         "10:00:00",
		Status:       status,
		Channel:      "client",
		CreatedAt:    reservationTestNow,
		UpdatedAt:    reservationTestNow,
	}
}

func (s *ReservationUseCaseTestSuite) TestCreate() {
	facilityID := uuid.New()
	accountID := uuid.New()
	reservationID := uuid.New()

	input := func() usecase.CreateReservationInput {
		return usecase.CreateReservationInput{
			FacilityID: facilityID,
			Day:        "2025-06-02",
			Time:       "10:00:00",
			AccountID:  &accountID,
		}
	}

	s.Run("authenticated booking on a free slot", func() {
		s.SetupTest()
		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.reservations.EXPECT().FindForSlot(gomock.Any(), gomock.Any(), facilityID, gomock.Any()).
			Return(nil, nil)
		s.reservations.EXPECT().CountLiveOnDay(gomock.Any(), gomock.Any(), accountID, gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reservationID, nil)
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Nil(), reservationID).
			Return(reservationRM(reservationID, facilityID, &accountID, "pending"), nil)

		result, err := s.uc.Create(context.Background(), input())
		s.Require().NoError(err)
		s.Require().NotNil(result)
		s.Equal(reservationID, result.Reservation.ID)
		s.False(result.AccountCreated)
	})

	s.Run("confirmed slot is taken", func() {
		s.SetupTest()
		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.reservations.EXPECT().CountLiveOnDay(gomock.Any(), gomock.Any(), accountID, gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		s.reservations.EXPECT().FindForSlot(gomock.Any(), gomock.Any(), facilityID, gomock.Any()).
			Return([]*readmodel.SlotReservationRM{
				{ID: uuid.New(), Status: "confirmed", CreatedAt: reservationTestNow.Add(-time.Hour)},
			}, nil)

		_, err := s.uc.Create(context.Background(), input())
		s.Require().ErrorIs(err, usecase.ErrSlotTaken)
	})

	s.Run("live pending hold by another account is taken", func() {
		s.SetupTest()
		other := uuid.New()
		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.reservations.EXPECT().CountLiveOnDay(gomock.Any(), gomock.Any(), accountID, gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		s.reservations.EXPECT().FindForSlot(gomock.Any(), gomock.Any(), facilityID, gomock.Any()).
			Return([]*readmodel.SlotReservationRM{
				{ID: uuid.New(), AccountID: &other, Status: "pending", CreatedAt: reservationTestNow.Add(-10 * time.Minute)},
			}, nil)

		_, err := s.uc.Create(context.Background(), input())
		s.Require().ErrorIs(err, usecase.ErrSlotTaken)
	})

	s.Run("live pending hold by the requester is a duplicate", func() {
		s.SetupTest()
		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.reservations.EXPECT().CountLiveOnDay(gomock.Any(), gomock.Any(), accountID, gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		s.reservations.EXPECT().FindForSlot(gomock.Any(), gomock.Any(), facilityID, gomock.Any()).
			Return([]*readmodel.SlotReservationRM{
				{ID: uuid.New(), AccountID: &accountID, Status: "pending", CreatedAt: reservationTestNow.Add(-10 * time.Minute)},
			}, nil)

		_, err := s.uc.Create(context.Background(), input())
		s.Require().ErrorIs(err, usecase.ErrDuplicateReservation)
	})

	s.Run("expired pending hold does not block the slot", func() {
		s.SetupTest()
		other := uuid.New()
		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.reservations.EXPECT().FindForSlot(gomock.Any(), gomock.Any(), facilityID, gomock.Any()).
			Return([]*readmodel.SlotReservationRM{
				{ID: uuid.New(), AccountID: &other, Status: "pending", CreatedAt: reservationTestNow.Add(-reservation.PendingTTL - time.Minute)},
			}, nil)
		s.reservations.EXPECT().CountLiveOnDay(gomock.Any(), gomock.Any(), accountID, gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reservationID, nil)
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Nil(), reservationID).
			Return(reservationRM(reservationID, facilityID, &accountID, "pending"), nil)

		result, err := s.uc.Create(context.Background(), input())
		s.Require().NoError(err)
		s.NotNil(result)
	})

	s.Run("daily limit blocks a third booking before the slot is inspected", func() {
		s.SetupTest()
		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.reservations.EXPECT().CountLiveOnDay(gomock.Any(), gomock.Any(), accountID, gomock.Any(), gomock.Any()).
			Return(int64(reservation.MaxPerDayPerAccount), nil)

		_, err := s.uc.Create(context.Background(), input())
		s.Require().ErrorIs(err, usecase.ErrDailyLimitReached)
	})

	s.Run("admin channel skips the daily limit", func() {
		s.SetupTest()
		in := input()
		in.Channel = "admin"
		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.reservations.EXPECT().FindForSlot(gomock.Any(), gomock.Any(), facilityID, gomock.Any()).
			Return(nil, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, r *reservation.Reservation) (uuid.UUID, error) {
				s.Equal(reservation.StatusConfirmed, r.Status())
				return reservationID, nil
			})
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Nil(), reservationID).
			Return(reservationRM(reservationID, facilityID, &accountID, "confirmed"), nil)

		result, err := s.uc.Create(context.Background(), in)
		s.Require().NoError(err)
		s.Equal("confirmed", result.Reservation.Status)
	})

	s.Run("code collision is retried with a fresh code", func() {
		s.SetupTest()
		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.reservations.EXPECT().FindForSlot(gomock.Any(), gomock.Any(), facilityID, gomock.Any()).
			Return(nil, nil)
		s.reservations.EXPECT().CountLiveOnDay(gomock.Any(), gomock.Any(), accountID, gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		gomock.InOrder(
			s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(uuid.Nil, infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "reservations_code_key"}),
			s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(reservationID, nil),
		)
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Nil(), reservationID).
			Return(reservationRM(reservationID, facilityID, &accountID, "pending"), nil)

		result, err := s.uc.Create(context.Background(), input())
		s.Require().NoError(err)
		s.NotNil(result)
	})

	s.Run("losing the confirmed-slot index race is a conflict", func() {
		s.SetupTest()
		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.reservations.EXPECT().FindForSlot(gomock.Any(), gomock.Any(), facilityID, gomock.Any()).
			Return(nil, nil)
		s.reservations.EXPECT().CountLiveOnDay(gomock.Any(), gomock.Any(), accountID, gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "reservations_slot_confirmed_key"})

		_, err := s.uc.Create(context.Background(), input())
		s.Require().ErrorIs(err, usecase.ErrSlotTaken)
	})

	s.Run("guest booking provisions an account and sends mails", func() {
		s.SetupTest()
		guestAccountID := uuid.New()
		in := input()
		in.AccountID = nil
		in.Guest = usecase.Contact{Name: "Jean Dupont", Email: "jean@example.com"}

		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.provisioner.EXPECT().Resolve(gomock.Any(), gomock.Any(), in.Guest).
			Return(&usecase.ProvisionedAccount{
				Account:     &readmodel.AccountRM{ID: guestAccountID, Name: "Jean Dupont", Email: "jean@example.com"},
				Created:     true,
				RawPassword: "generated-pw",
			}, nil)
		s.reservations.EXPECT().FindForSlot(gomock.Any(), gomock.Any(), facilityID, gomock.Any()).
			Return(nil, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reservationID, nil)
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Nil(), reservationID).
			Return(reservationRM(reservationID, facilityID, &guestAccountID, "pending"), nil)
		s.mailer.EXPECT().SendGuestWelcome(gomock.Any(), "jean@example.com", "Jean Dupont", "generated-pw").
			Return(nil)
		s.mailer.EXPECT().SendReservationConfirmation(gomock.Any(), "jean@example.com", gomock.Any()).
			Return(nil)

		result, err := s.uc.Create(context.Background(), in)
		s.Require().NoError(err)
		s.True(result.AccountCreated)
	})

	s.Run("guest resolved to an existing account is never capped", func() {
		s.SetupTest()
		existingAccountID := uuid.New()
		in := input()
		in.AccountID = nil
		in.Guest = usecase.Contact{Name: "Jean Dupont", Email: "jean@example.com"}

		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.reservations.EXPECT().FindForSlot(gomock.Any(), gomock.Any(), facilityID, gomock.Any()).
			Return(nil, nil)
		s.provisioner.EXPECT().Resolve(gomock.Any(), gomock.Any(), in.Guest).
			Return(&usecase.ProvisionedAccount{
				Account: &readmodel.AccountRM{ID: existingAccountID, Name: "Jean Dupont", Email: "jean@example.com"},
			}, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reservationID, nil)
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Nil(), reservationID).
			Return(reservationRM(reservationID, facilityID, &existingAccountID, "pending"), nil)
		s.mailer.EXPECT().SendReservationConfirmation(gomock.Any(), "jean@example.com", gomock.Any()).
			Return(nil)

		result, err := s.uc.Create(context.Background(), in)
		s.Require().NoError(err)
		s.False(result.AccountCreated)
	})

	s.Run("anonymous guest booking gets no account and no mail", func() {
		s.SetupTest()
		in := input()
		in.AccountID = nil
		in.Guest = usecase.Contact{Name: "Walk-in"}

		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.provisioner.EXPECT().Resolve(gomock.Any(), gomock.Any(), in.Guest).Return(nil, nil)
		s.reservations.EXPECT().FindForSlot(gomock.Any(), gomock.Any(), facilityID, gomock.Any()).
			Return(nil, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reservationID, nil)
		guestName := "Walk-in"
		rm := reservationRM(reservationID, facilityID, nil, "pending")
		rm.GuestName = &guestName
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Nil(), reservationID).Return(rm, nil)

		result, err := s.uc.Create(context.Background(), in)
		s.Require().NoError(err)
		s.False(result.AccountCreated)
		s.Nil(result.Reservation.AccountID)
	})

	s.Run("mail failures do not fail the booking", func() {
		s.SetupTest()
		guestAccountID := uuid.New()
		in := input()
		in.AccountID = nil
		in.Guest = usecase.Contact{Name: "Jean Dupont", Email: "jean@example.com"}

		s.expectTx()
		s.expectActiveFacility(facilityID)
		s.provisioner.EXPECT().Resolve(gomock.Any(), gomock.Any(), in.Guest).
			Return(&usecase.ProvisionedAccount{
				Account:     &readmodel.AccountRM{ID: guestAccountID, Name: "Jean Dupont", Email: "jean@example.com"},
				Created:     true,
				RawPassword: "generated-pw",
			}, nil)
		s.reservations.EXPECT().FindForSlot(gomock.Any(), gomock.Any(), facilityID, gomock.Any()).
			Return(nil, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reservationID, nil)
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Nil(), reservationID).
			Return(reservationRM(reservationID, facilityID, &guestAccountID, "pending"), nil)
		s.mailer.EXPECT().SendGuestWelcome(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ErrDatabaseOperationFailed)
		s.mailer.EXPECT().SendReservationConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ErrDatabaseOperationFailed)

		_, err := s.uc.Create(context.Background(), in)
		s.Require().NoError(err)
	})

	s.Run("invalid slot", func() {
		s.SetupTest()
		in := input()
		in.Time = "25:00:00"

		_, err := s.uc.Create(context.Background(), in)
		s.Require().ErrorIs(err, usecase.ErrInvalidSlot)
	})

	s.Run("unknown facility", func() {
		s.SetupTest()
		s.facilities.EXPECT().FindByID(gomock.Any(), gomock.Any(), facilityID).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := s.uc.Create(context.Background(), input())
		s.Require().ErrorIs(err, usecase.ErrFacilityNotFound)
	})

	s.Run("inactive facility reads as missing", func() {
		s.SetupTest()
		s.facilities.EXPECT().FindByID(gomock.Any(), gomock.Any(), facilityID).
			Return(&readmodel.FacilityRM{ID: facilityID, IsActive: false}, nil)

		_, err := s.uc.Create(context.Background(), input())
		s.Require().ErrorIs(err, usecase.ErrFacilityNotFound)
	})
}

func (s *ReservationUseCaseTestSuite) TestCancel() {
	facilityID := uuid.New()
	owner := uuid.New()
	reservationID := uuid.New()

	s.Run("owner cancels an upcoming reservation", func() {
		s.SetupTest()
		s.expectTx()
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Any(), reservationID).
			Return(reservationRM(reservationID, facilityID, &owner, "pending"), nil)
		s.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), reservationID, reservation.StatusCancelled).
			Return(nil)
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Nil(), reservationID).
			Return(reservationRM(reservationID, facilityID, &owner, "cancelled"), nil)

		rm, err := s.uc.Cancel(context.Background(), reservationID, owner)
		s.Require().NoError(err)
		s.Equal("cancelled", rm.Status)
	})

	s.Run("another account may not cancel", func() {
		s.SetupTest()
		s.expectTx()
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Any(), reservationID).
			Return(reservationRM(reservationID, facilityID, &owner, "confirmed"), nil)

		_, err := s.uc.Cancel(context.Background(), reservationID, uuid.New())
		s.Require().ErrorIs(err, usecase.ErrCancelForbidden)
	})

	s.Run("unowned reservations are cancellable by any account", func() {
		s.SetupTest()
		s.expectTx()
		guestName := "Walk-in"
		rm := reservationRM(reservationID, facilityID, nil, "pending")
		rm.GuestName = &guestName
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Any(), reservationID).Return(rm, nil)
		s.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), reservationID, reservation.StatusCancelled).
			Return(nil)
		cancelled := reservationRM(reservationID, facilityID, nil, "cancelled")
		cancelled.GuestName = &guestName
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Nil(), reservationID).Return(cancelled, nil)

		_, err := s.uc.Cancel(context.Background(), reservationID, uuid.New())
		s.Require().NoError(err)
	})

	s.Run("already cancelled", func() {
		s.SetupTest()
		s.expectTx()
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Any(), reservationID).
			Return(reservationRM(reservationID, facilityID, &owner, "cancelled"), nil)

		_, err := s.uc.Cancel(context.Background(), reservationID, owner)
		s.Require().ErrorIs(err, reservation.ErrAlreadyCancelled)
	})

	s.Run("past reservations cannot be cancelled", func() {
		s.SetupTest()
		s.clock.Set(time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC))
		s.expectTx()
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Any(), reservationID).
			Return(reservationRM(reservationID, facilityID, &owner, "confirmed"), nil)

		_, err := s.uc.Cancel(context.Background(), reservationID, owner)
		s.Require().ErrorIs(err, reservation.ErrPastReservation)
	})

	s.Run("unknown reservation", func() {
		s.SetupTest()
		s.expectTx()
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Any(), reservationID).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := s.uc.Cancel(context.Background(), reservationID, owner)
		s.Require().ErrorIs(err, usecase.ErrReservationNotFound)
	})
}

func (s *ReservationUseCaseTestSuite) TestListHistory() {
	accountID := uuid.New()

	s.Run("out-of-range paging falls back to defaults", func() {
		s.SetupTest()
		s.reservations.EXPECT().FindHistory(gomock.Any(), accountID, gomock.Any(), int32(20), int32(0)).
			Return(nil, nil)

		_, err := s.uc.ListHistory(context.Background(), accountID, 0, -5)
		s.Require().NoError(err)
	})

	s.Run("valid paging passes through", func() {
		s.SetupTest()
		s.reservations.EXPECT().FindHistory(gomock.Any(), accountID, gomock.Any(), int32(50), int32(10)).
			Return(nil, nil)

		_, err := s.uc.ListHistory(context.Background(), accountID, 50, 10)
		s.Require().NoError(err)
	})
}

func (s *ReservationUseCaseTestSuite) TestListByFacilityDay() {
	facilityID := uuid.New()

	s.Run("invalid day", func() {
		s.SetupTest()
		_, err := s.uc.ListByFacilityDay(context.Background(), facilityID, "02/06/2025")
		s.Require().ErrorIs(err, usecase.ErrInvalidSlot)
	})

	s.Run("lists the facility's day", func() {
		s.SetupTest()
		s.expectActiveFacility(facilityID)
		s.reservations.EXPECT().FindByFacilityDay(gomock.Any(), facilityID, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), gomock.Any()).
			Return([]*readmodel.ReservationListRM{{ID: uuid.New()}}, nil)

		rms, err := s.uc.ListByFacilityDay(context.Background(), facilityID, "2025-06-02")
		s.Require().NoError(err)
		s.Len(rms, 1)
	})
}
