package background

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/reqsync/reqsync-api/external/mail"
	"github.com/reqsync/reqsync-api/external/mocks"
	"github.com/reqsync/reqsync-api/notification"
	"github.com/reqsync/reqsync-api/schema"
	"github.com/reqsync/reqsync-api/store"
	storemocks "github.com/reqsync/reqsync-api/store/mocks"
)

func newTestManager(t *testing.T) (*Manager, *storemocks.MockReqsyncCore, *mocks.MockMailer, *notification.Registry) {
	ctl := gomock.NewController(t)
	t.Cleanup(ctl.Finish)

	s := storemocks.NewMockReqsyncCore(ctl)
	mailer := mocks.NewMockMailer(ctl)
	registry := notification.NewRegistry()

	return New(s, mailer, registry), s, mailer, registry
}

func TestHelpRequestFanout(t *testing.T) {
	m, s, mailer, registry := newTestManager(t)

	req := &schema.HelpRequest{
		ID:        1,
		UserEmail: "requester@example.com",
		Name:      "Asha",
		Phone:     "555-0101",
		Area:      "Downtown",
		HelpType:  "Medical",
		Message:   "Need a wheelchair",
		Status:    schema.REQUEST_PENDING,
	}

	volunteers := []schema.Volunteer{
		{ID: 1, UserEmail: "v1@example.com", Name: "V One"},
		{ID: 2, UserEmail: "v2@example.com", Name: "V Two"},
	}

	// v1 is online, v2 is not
	sub := registry.Subscribe("v1@example.com")

	s.EXPECT().ListVolunteers().Return(volunteers, nil).Times(1)
	mailer.EXPECT().SendHelpRequestAlert(req, "v1@example.com", "V One").Return(nil).Times(1)
	mailer.EXPECT().SendHelpRequestAlert(req, "v2@example.com", "V Two").Return(nil).Times(1)

	m.handleHelpRequestCreated(req)

	select {
	case n := <-sub.C():
		assert.Equal(t, "v1@example.com", n.Email)
		assert.Contains(t, n.Message, "Medical")
		assert.NotZero(t, n.Timestamp)
	default:
		t.Fatal("subscribed volunteer did not get a push notification")
	}
}

func TestHelpRequestFanoutContinuesOnEmailFailure(t *testing.T) {
	m, s, mailer, _ := newTestManager(t)

	req := &schema.HelpRequest{ID: 2, HelpType: "Food", Status: schema.REQUEST_PENDING}

	volunteers := []schema.Volunteer{
		{ID: 1, UserEmail: "v1@example.com", Name: "V One"},
		{ID: 2, UserEmail: "v2@example.com", Name: "V Two"},
		{ID: 3, UserEmail: "v3@example.com", Name: "V Three"},
	}

	s.EXPECT().ListVolunteers().Return(volunteers, nil).Times(1)

	// the first recipient fails; the remaining two must still be attempted
	mailer.EXPECT().SendHelpRequestAlert(req, "v1@example.com", "V One").Return(mail.ErrMessageNotSent).Times(1)
	mailer.EXPECT().SendHelpRequestAlert(req, "v2@example.com", "V Two").Return(nil).Times(1)
	mailer.EXPECT().SendHelpRequestAlert(req, "v3@example.com", "V Three").Return(nil).Times(1)

	m.handleHelpRequestCreated(req)
}

func TestIssueFanout(t *testing.T) {
	m, s, mailer, registry := newTestManager(t)

	reportedAt := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	issue := &schema.RequestHelperIssue{
		ID:            7,
		Description:   "Nobody showed up",
		ReporterEmail: "requester@example.com",
		ReportedAt:    reportedAt,
	}

	req := &schema.HelpRequest{
		ID:        5,
		UserEmail: "requester@example.com",
		Name:      "Asha",
		HelpType:  "Medical",
		Status:    schema.REQUEST_PENDING,
	}

	volunteers := []schema.Volunteer{
		{ID: 1, UserEmail: "v1@example.com", Name: "V One"},
	}

	sub := registry.Subscribe("v1@example.com")

	s.EXPECT().GetUser("requester@example.com").Return(&schema.User{Email: "requester@example.com"}, nil).Times(1)
	s.EXPECT().GetPendingRequestByUser("requester@example.com").Return(req, nil).Times(1)
	s.EXPECT().ListVolunteers().Return(volunteers, nil).Times(1)
	mailer.EXPECT().SendIssueReportedAlert(issue, req, "v1@example.com").Return(nil).Times(1)

	m.handleIssueReported(issue)

	select {
	case n := <-sub.C():
		assert.Contains(t, n.Message, "Medical")
		assert.Contains(t, n.Message, "Nobody showed up")
		assert.Contains(t, n.Message, reportedAt.Format(time.RFC1123))
	default:
		t.Fatal("subscribed volunteer did not get a push notification")
	}
}

func TestIssueFanoutAbortsWhenReporterUnknown(t *testing.T) {
	m, s, _, _ := newTestManager(t)

	issue := &schema.RequestHelperIssue{ID: 8, ReporterEmail: "ghost@example.com"}

	s.EXPECT().GetUser("ghost@example.com").Return(nil, store.ErrUserNotFound).Times(1)

	// no volunteer load and no mail when the reporter lookup misses
	m.handleIssueReported(issue)
}

func TestRequestResolvedNotifiesRequesterOnly(t *testing.T) {
	m, _, mailer, _ := newTestManager(t)

	req := &schema.HelpRequest{
		ID:        5,
		UserEmail: "requester@example.com",
		Name:      "Asha",
		HelpType:  "Medical",
		Status:    schema.REQUEST_RESOLVED,
	}
	volunteer := &schema.Volunteer{ID: 2, UserEmail: "v1@example.com", Name: "V One"}
	resolvedAt := time.Now()

	mailer.EXPECT().
		SendRequestFulfilled("requester@example.com", "Asha", "V One", "Medical", resolvedAt).
		Return(nil).
		Times(1)

	m.handleRequestResolved(req, volunteer, resolvedAt)
}

func TestManagerRunsEventsAsynchronously(t *testing.T) {
	m, s, mailer, _ := newTestManager(t)

	req := &schema.HelpRequest{ID: 9, HelpType: "Transport", Status: schema.REQUEST_PENDING}
	volunteers := []schema.Volunteer{{ID: 1, UserEmail: "v1@example.com", Name: "V One"}}

	done := make(chan struct{})

	s.EXPECT().ListVolunteers().Return(volunteers, nil).Times(1)
	mailer.EXPECT().
		SendHelpRequestAlert(req, "v1@example.com", "V One").
		DoAndReturn(func(*schema.HelpRequest, string, string) error {
			close(done)
			return nil
		}).
		Times(1)

	assert.NoError(t, m.Run())
	assert.Error(t, m.Run(), "second Run should be rejected")
	defer m.Stop()

	m.OnHelpRequestCreated(req)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("fan-out did not run")
	}
}
