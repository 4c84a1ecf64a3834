// Package mail sends transactional email over SMTP.
package mail

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/reqsync/reqsync-api/schema"
)

// ErrMessageNotSent is returned whenever the SMTP transport refuses a
// message. Callers inside a fan-out log it and move on to the next
// recipient.
var ErrMessageNotSent = fmt.Errorf("failed to send email")

// Mailer is the outgoing email surface of the system.
type Mailer interface {
	SendVolunteerWelcome(toEmail, volunteerName string) error
	SendHelpRequestAlert(req *schema.HelpRequest, toEmail, volunteerName string) error
	SendIssueReportedAlert(issue *schema.RequestHelperIssue, req *schema.HelpRequest, toEmail string) error
	SendRequestFulfilled(toEmail, requesterName, volunteerName, helpType string, fulfilledAt time.Time) error
}

// Client is an SMTP implementation of Mailer.
type Client struct {
	dialer *gomail.Dialer
	from   string
}

func NewClient(host string, port int, username, password, from string) *Client {
	return &Client{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (c *Client) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := c.dialer.DialAndSend(m); err != nil {
		return ErrMessageNotSent
	}
	return nil
}
