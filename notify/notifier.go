//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=../mocks/mock_notifier.go -package=mocks

// Package notify delivers meeting confirmations to participants. Two modes
// exist: a demo notifier that only logs the rendered message, and an SMTP
// notifier used when credentials are configured.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"sched-lab/domain"
)

type Notifier interface {
	SendMeetingConfirmation(ctx context.Context, meeting domain.Meeting, participants []string) error
}

// renderConfirmation builds the plain-text body shared by both modes.
func renderConfirmation(meeting domain.Meeting) (subject, body string) {
	title := meeting.Title
	if title == "" {
		title = "Team Meeting"
	}
	subject = "Meeting Confirmed: " + title

	var b strings.Builder
	fmt.Fprintf(&b, "Your meeting has been scheduled.\n\n")
	fmt.Fprintf(&b, "Title: %s\n", title)
	fmt.Fprintf(&b, "Date: %s\n", meeting.Date)
	fmt.Fprintf(&b, "Time: %s\n", meeting.Time)
	if meeting.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", meeting.Description)
	}
	fmt.Fprintf(&b, "Participants: %s\n", strings.Join(meeting.Participants, ", "))
	return subject, b.String()
}

// DemoNotifier simulates delivery. Default mode: no credentials required.
type DemoNotifier struct {
	log *slog.Logger
}

func NewDemoNotifier(log *slog.Logger) *DemoNotifier {
	return &DemoNotifier{log: log}
}

func (n *DemoNotifier) SendMeetingConfirmation(_ context.Context, meeting domain.Meeting, participants []string) error {
	subject, body := renderConfirmation(meeting)
	for _, to := range participants {
		n.log.Info("Simulated confirmation email",
			"to", to,
			"subject", subject,
			"body", body,
		)
	}
	return nil
}

// SMTPConfig carries the delivery credentials.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (c SMTPConfig) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

func (c SMTPConfig) addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SMTPNotifier sends real confirmations over SMTP with STARTTLS.
type SMTPNotifier struct {
	config SMTPConfig
	log    *slog.Logger
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPNotifier(config SMTPConfig, log *slog.Logger) *SMTPNotifier {
	return &SMTPNotifier{config: config, log: log, send: smtp.SendMail}
}

// SendMeetingConfirmation mails each participant individually; one refused
// recipient does not block the others. It fails only when nobody could be
// reached.
func (n *SMTPNotifier) SendMeetingConfirmation(_ context.Context, meeting domain.Meeting, participants []string) error {
	subject, body := renderConfirmation(meeting)
	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)

	delivered := 0
	for _, to := range participants {
		msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
			n.config.Username, to, subject, body)
		if err := n.send(n.config.addr(), auth, n.config.Username, []string{to}, []byte(msg)); err != nil {
			n.log.Error("Sending confirmation failed", "to", to, "error", err)
			continue
		}
		delivered++
	}
	if delivered == 0 && len(participants) > 0 {
		return fmt.Errorf("no confirmation could be delivered for meeting %s", meeting.ID)
	}
	return nil
}
