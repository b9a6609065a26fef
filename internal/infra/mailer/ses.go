package mailer

import (
	"context"
	"fmt"

	"courtdesk/internal/pkg/config"
	"courtdesk/internal/pkg/errs"
	"courtdesk/internal/usecase"
	"courtdesk/internal/usecase/readmodel"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESMailer sends notification mail through AWS SESv2.
type SESMailer struct {
	client *sesv2.Client
	sender string
}

func NewSESMailer(cfg config.MailConfig) (*SESMailer, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, errs.New("ses credentials are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load aws config")
	}

	return &SESMailer{
		client: sesv2.NewFromConfig(awsCfg),
		sender: cfg.Sender,
	}, nil
}

func (m *SESMailer) SendGuestWelcome(ctx context.Context, email, name, rawPassword string) error {
	subject, body := guestWelcomeMail(name, email, rawPassword)
	return m.send(ctx, email, subject, body)
}

func (m *SESMailer) SendReservationConfirmation(ctx context.Context, email string, rm *readmodel.ReservationRM) error {
	subject, body := reservationConfirmationMail(rm)
	return m.send(ctx, email, subject, body)
}

func (m *SESMailer) send(ctx context.Context, recipient, subject, body string) error {
	if recipient == "" {
		return errs.New("recipient is required")
	}

	input := &sesv2.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
		FromEmailAddress: aws.String(m.sender),
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return errs.Wrap(err, "failed to send ses email")
	}

	return nil
}

func guestWelcomeMail(name, email, rawPassword string) (subject, body string) {
	if name == "" {
		name = "there"
	}
	subject = "Your CourtDesk account"
	body = fmt.Sprintf(
		"Hi %s,\n\n"+
			"An account was created for you while booking a court.\n\n"+
			"Login: %s\nPassword: %s\n\n"+
			"Please change your password after your first login.\n",
		name, email, rawPassword,
	)
	return subject, body
}

func reservationConfirmationMail(rm *readmodel.ReservationRM) (subject, body string) {
	subject = fmt.Sprintf("Reservation %s", rm.Code)
	body = fmt.Sprintf(
		"Your reservation is registered.\n\n"+
			"Code: %s\nFacility: %s\nDate: %s\nTime: %s\nStatus: %s\n",
		rm.Code, rm.FacilityName, rm.Day, rm.Time, rm.Status,
	)
	return subject, body
}

var _ usecase.Mailer = (*SESMailer)(nil)
