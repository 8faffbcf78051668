package utils

import (
	"fmt"
	"log"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"shikhi_backend/config"
)

// Mailer sends transactional mail through Sendgrid. Sends are best-effort:
// failures are logged and never surfaced to the request path.
type Mailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
	logger *log.Logger
}

func NewMailer(cfg *config.Config, logger *log.Logger) *Mailer {
	if cfg.SendgridAPIKey == "" {
		return &Mailer{logger: logger}
	}
	return &Mailer{
		client: sendgrid.NewSendClient(cfg.SendgridAPIKey),
		from:   sgmail.NewEmail("Japanese Shikhi", cfg.EmailSender),
		logger: logger,
	}
}

// SendEnrollmentConfirmation mails the learner after a successful enrollment.
func (m *Mailer) SendEnrollmentConfirmation(toName, toEmail, courseTitle string) {
	if m.client == nil {
		return
	}

	subject := "Enrollment confirmed: " + courseTitle
	plain := fmt.Sprintf("Hi %s, you are now enrolled in %s. Check your dashboard for the upcoming live classes.", toName, courseTitle)
	html := fmt.Sprintf("<p>Hi %s,</p><p>You are now enrolled in <strong>%s</strong>. Check your dashboard for the upcoming live classes.</p>", toName, courseTitle)

	message := sgmail.NewSingleEmail(m.from, subject, sgmail.NewEmail(toName, toEmail), plain, html)

	go func() {
		resp, err := m.client.Send(message)
		if err != nil {
			m.logger.Printf("enrollment email to %s failed: %v", toEmail, err)
			return
		}
		if resp.StatusCode >= http.StatusBadRequest {
			m.logger.Printf("enrollment email to %s rejected: %d %s", toEmail, resp.StatusCode, resp.Body)
		}
	}()
}
