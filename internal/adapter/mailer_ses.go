package adapter

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-nutri-keeper/internal/config"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const verificationSubject = "Verify your Nutri Keeper account"

// sesAPI is the part of the SES client the mailer needs.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesMailer struct {
	client sesAPI
	from   string
}

// NewSESMailer loads the default AWS credential chain for cfg.AWSRegion and
// returns a [Mailer] sending through Amazon SES.
func NewSESMailer(ctx context.Context, cfg config.Mail) (Mailer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newSESMailer(ses.NewFromConfig(awsCfg), cfg.From), nil
}

func newSESMailer(client sesAPI, from string) *sesMailer {
	return &sesMailer{client: client, from: from}
}

// SendVerification implements [Mailer].
func (m *sesMailer) SendVerification(ctx context.Context, msg VerificationEmail) error {
	log := logger.FromContext(ctx)

	if _, err := mail.ParseAddress(msg.To); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(verificationSubject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(verificationBody(msg)),
					Charset: aws.String("UTF-8"),
				},
			},
		},
		Source: aws.String(m.from),
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		log.Err(err).Str("func", "*sesMailer.SendVerification").Msg("ses rejected verification email")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	log.Info().
		Str("func", "*sesMailer.SendVerification").
		Str("message_id", aws.ToString(out.MessageId)).
		Msg("verification email sent")
	return nil
}

func verificationBody(msg VerificationEmail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", msg.Username)
	b.WriteString("Please confirm your email address by opening the link below:\n\n")
	b.WriteString(msg.Link)
	b.WriteString("\n\nThe link expires in 24 hours. If you did not create an account, ignore this message.\n")
	return b.String()
}
