package background

import (
	"fmt"
	"time"

	"github.com/reqsync/reqsync-api/notification"
	"github.com/reqsync/reqsync-api/schema"
)

// notifyVolunteer makes the two independent delivery attempts for one
// recipient: push first, then email. A missing subscription just means the
// volunteer is offline; email is the fallback channel either way.
func (m *Manager) notifyVolunteer(v schema.Volunteer, message string, sendMail func() error) {
	logger := log.WithField("volunteer", v.UserEmail)

	n := notification.Notification{
		Email:     v.UserEmail,
		Message:   message,
		Timestamp: time.Now().UnixNano() / int64(time.Millisecond),
	}

	switch err := m.registry.Publish(v.UserEmail, n); err {
	case nil, notification.ErrNoActiveSubscription:
	default:
		logger.WithError(err).Warn("push delivery failed")
	}

	if err := sendMail(); err != nil {
		logger.WithError(err).Error("email delivery failed")
	}
}

// handleHelpRequestCreated fans a freshly created help request out to the
// full current volunteer set. Recipients are independent: a failure for one
// never aborts the rest.
func (m *Manager) handleHelpRequestCreated(req *schema.HelpRequest) {
	volunteers, err := m.store.ListVolunteers()
	if err != nil {
		log.WithError(err).Error("cannot load volunteers for fan-out")
		return
	}

	message := fmt.Sprintf("A new help request for %s has been posted.", req.HelpType)

	for _, v := range volunteers {
		v := v
		m.notifyVolunteer(v, message, func() error {
			return m.mailer.SendHelpRequestAlert(req, v.UserEmail, v.Name)
		})
	}
}

// handleIssueReported resolves the reporter and their still-pending request
// and repeats the volunteer fan-out with the escalation message.
func (m *Manager) handleIssueReported(issue *schema.RequestHelperIssue) {
	logger := log.WithField("issue", issue.ID)

	if _, err := m.store.GetUser(issue.ReporterEmail); err != nil {
		logger.WithError(err).Error("issue reporter not found")
		return
	}

	req, err := m.store.GetPendingRequestByUser(issue.ReporterEmail)
	if err != nil {
		logger.WithError(err).Error("no pending help request behind the issue")
		return
	}

	volunteers, err := m.store.ListVolunteers()
	if err != nil {
		logger.WithError(err).Error("cannot load volunteers for fan-out")
		return
	}

	message := fmt.Sprintf("%s reported on %s that their %s help request is still unresolved: %s",
		req.Name, issue.ReportedAt.Format(time.RFC1123), req.HelpType, issue.Description)

	for _, v := range volunteers {
		v := v
		m.notifyVolunteer(v, message, func() error {
			return m.mailer.SendIssueReportedAlert(issue, req, v.UserEmail)
		})
	}
}

// handleRequestResolved is the single-recipient path: one email to the
// original requester confirming who fulfilled the request and when.
func (m *Manager) handleRequestResolved(req *schema.HelpRequest, volunteer *schema.Volunteer, resolvedAt time.Time) {
	if err := m.mailer.SendRequestFulfilled(req.UserEmail, req.Name, volunteer.Name, req.HelpType, resolvedAt); err != nil {
		log.WithError(err).WithField("requester", req.UserEmail).Error("fulfillment email failed")
	}
}
