// Package background runs the notification fan-out off the request path.
// Events are handed over on an in-process channel and consumed by a small
// worker pool, so request latency stays independent of the volunteer count
// and the mail transport.
package background

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/reqsync/reqsync-api/external/mail"
	"github.com/reqsync/reqsync-api/notification"
	"github.com/reqsync/reqsync-api/schema"
	"github.com/reqsync/reqsync-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

const (
	eventQueueSize = 256
	workerCount    = 5
)

// Dispatcher is the event surface the request path fires into. Calls
// return as soon as the event is queued; the caller never learns about
// delivery failures.
type Dispatcher interface {
	OnHelpRequestCreated(req *schema.HelpRequest)
	OnIssueReported(issue *schema.RequestHelperIssue)
	OnRequestResolved(req *schema.HelpRequest, volunteer *schema.Volunteer)
}

type helpRequestCreated struct {
	request *schema.HelpRequest
}

type issueReported struct {
	issue *schema.RequestHelperIssue
}

type requestResolved struct {
	request    *schema.HelpRequest
	volunteer  *schema.Volunteer
	resolvedAt time.Time
}

// Manager is the reqsync background manager. It consumes queued events and
// fans each one out to its recipients over push and email.
type Manager struct {
	store    store.ReqsyncCore
	mailer   mail.Mailer
	registry *notification.Registry

	events chan interface{}
	done   chan struct{}

	mu      sync.Mutex
	wg      sync.WaitGroup
	started bool
	stopped bool
}

func New(s store.ReqsyncCore, mailer mail.Mailer, registry *notification.Registry) *Manager {
	return &Manager{
		store:    s,
		mailer:   mailer,
		registry: registry,
		events:   make(chan interface{}, eventQueueSize),
		done:     make(chan struct{}),
	}
}

// Run spawns workers to execute background jobs.
func (m *Manager) Run() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return errors.New("background worker has started")
	}
	m.started = true

	for i := 0; i < workerCount; i++ {
		m.wg.Add(1)
		go m.work()
	}
	return nil
}

// Stop shuts the worker pool down. Queued events that have not been picked
// up yet are dropped; in-flight handlers finish.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started || m.stopped {
		return
	}
	m.stopped = true
	close(m.done)
	m.wg.Wait()
}

func (m *Manager) work() {
	defer m.wg.Done()
	for {
		select {
		case <-m.done:
			return
		case e := <-m.events:
			m.handle(e)
		}
	}
}

func (m *Manager) handle(e interface{}) {
	switch e := e.(type) {
	case helpRequestCreated:
		m.handleHelpRequestCreated(e.request)
	case issueReported:
		m.handleIssueReported(e.issue)
	case requestResolved:
		m.handleRequestResolved(e.request, e.volunteer, e.resolvedAt)
	default:
		log.Errorf("unknown background event: %T", e)
	}
}

// enqueue hands an event to the worker pool without ever blocking the
// request path. The queue is not durable; when it overflows the event is
// dropped and logged.
func (m *Manager) enqueue(e interface{}) {
	select {
	case m.events <- e:
	default:
		log.WithField("event", e).Error("event queue full, dropping event")
	}
}

func (m *Manager) OnHelpRequestCreated(req *schema.HelpRequest) {
	m.enqueue(helpRequestCreated{request: req})
}

func (m *Manager) OnIssueReported(issue *schema.RequestHelperIssue) {
	m.enqueue(issueReported{issue: issue})
}

func (m *Manager) OnRequestResolved(req *schema.HelpRequest, volunteer *schema.Volunteer) {
	m.enqueue(requestResolved{request: req, volunteer: volunteer, resolvedAt: time.Now()})
}
