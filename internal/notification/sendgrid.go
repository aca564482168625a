package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/trainops/coursedesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// EmailNotifier dispatches booking and entitlement emails via sendgrid.
// With an empty API key it runs disabled and only logs, which keeps
// local development and tests free of outbound mail.
type EmailNotifier struct {
	client *sendgrid.Client
	from   *mail.Email
	logger logger.Logger
}

func NewEmailNotifier(apiKey, fromEmail, fromName string, logger logger.Logger) *EmailNotifier {
	n := &EmailNotifier{
		from:   mail.NewEmail(fromName, fromEmail),
		logger: logger,
	}
	if apiKey == "" {
		logger.Warn("sendgrid API key is empty, notifications disabled")
		return n
	}
	n.client = sendgrid.NewSendClient(apiKey)
	return n
}

func (n *EmailNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking, recipients []string) {
	subject := fmt.Sprintf("Booking %s created", b.CourseNumber)
	body := fmt.Sprintf(
		"Course %s (%s, %s) has been booked.\nDates: %s to %s\nInstructor: %s",
		b.CourseNumber, b.CourseType, b.DeliveryMode,
		b.StartDate.Format("2006-01-02"), b.EndDate.Format("2006-01-02"),
		b.ActualInstructorID,
	)
	n.send(ctx, recipients, subject, body)
}

func (n *EmailNotifier) NotifyEntitlementExpiry(ctx context.Context, o *domain.LPOOrder, recipients []string, daysLeft int) {
	subject := fmt.Sprintf("LPO order for customer %s expires in %d days", o.CustomerID, daysLeft)
	body := fmt.Sprintf(
		"LPO order %s is valid until %s. Unused entitlements lapse after that date.",
		o.ID, o.ValidUntil.Format("2006-01-02"),
	)
	n.send(ctx, recipients, subject, body)
}

func (n *EmailNotifier) send(ctx context.Context, recipients []string, subject, body string) {
	if n.client == nil {
		n.logger.Debug("notification skipped (sendgrid disabled)", logger.String("subject", subject))
		return
	}
	if len(recipients) == 0 {
		n.logger.Debug("notification skipped (no recipients)", logger.String("subject", subject))
		return
	}
	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)", logger.String("subject", subject))
		return
	}

	for _, rcpt := range recipients {
		msg := mail.NewSingleEmail(n.from, subject, mail.NewEmail("", rcpt), body, "")
		resp, err := n.client.SendWithContext(ctx, msg)
		if err != nil {
			n.logger.Error("failed to send notification email",
				logger.String("recipient", rcpt),
				logger.String("error", err.Error()),
			)
			continue
		}
		if resp.StatusCode >= 400 {
			n.logger.Error("sendgrid rejected notification email",
				logger.String("recipient", rcpt),
				logger.Int("status", resp.StatusCode),
			)
		}
	}
}
