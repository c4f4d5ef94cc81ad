package mailingservices

import (
	"context"
	"fmt"
	"time"

	"github.com/civiceye/civiceye/config"
	"github.com/mailgun/mailgun-go/v4"
)

// Mailer sends transactional mail. Deliveries are best effort; callers fire
// and forget.
type Mailer interface {
	SendReportAcknowledgment(recipient, contactName, propertyAddress string) error
}

type Mailgun struct {
	Client *mailgun.MailgunImpl
	from   string
}

func (m *Mailgun) Init(c *config.Config) {
	m.Client = mailgun.NewMailgun(c.MgDomain, c.MailgunApiKey)
	m.from = c.MgEmailFrom
}

// SendReportAcknowledgment thanks a reporter who left contact details.
func (m *Mailgun) SendReportAcknowledgment(recipient, contactName, propertyAddress string) error {
	if contactName == "" {
		contactName = "there"
	}
	subject := "We received your vacancy report"
	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for your report", contactName)
	if propertyAddress != "" {
		body += fmt.Sprintf(" for %s", propertyAddress)
	}
	body += ".\n\nOur team reviews every submission. You can follow the property's verification status on the CivicEye dashboard.\n\n- The CivicEye team"

	message := m.Client.NewMessage(m.from, subject, body, recipient)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _, err := m.Client.Send(ctx, message)
	return err
}
