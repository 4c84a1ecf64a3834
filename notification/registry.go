// Package notification keeps track of live push channels, one per
// subscriber email. The registry is the only piece of state shared between
// request handlers and the fan-out workers, so every read-modify-write on
// the map goes through its mutex.
package notification

import (
	"fmt"
	"sync"
	"time"
)

var (
	ErrNoActiveSubscription = fmt.Errorf("no active subscription for this email")
	ErrDeliveryFailed       = fmt.Errorf("failed to deliver the notification")
)

// DefaultTTL is how long an idle subscription is kept before the transport
// is expected to tear it down.
const DefaultTTL = time.Hour

// subscriberBuffer is the per-subscriber channel capacity. Publish never
// blocks: a subscriber that stalls past its buffer is dropped.
const subscriberBuffer = 16

// Notification is the push payload streamed to a subscriber.
type Notification struct {
	Email     string `json:"email"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// Subscriber is the handle the transport layer attaches to a long-lived
// response. Events arrives on C until the subscription is replaced or torn
// down, at which point C is closed.
type Subscriber struct {
	email   string
	expires time.Time

	c    chan Notification
	once sync.Once
}

// C returns the event channel of this subscriber.
func (s *Subscriber) C() <-chan Notification {
	return s.c
}

// Deadline returns the time at which the transport should give up on this
// subscription.
func (s *Subscriber) Deadline() time.Time {
	return s.expires
}

func (s *Subscriber) close() {
	s.once.Do(func() {
		close(s.c)
	})
}

// Registry maps subscriber emails to their live push channel.
type Registry struct {
	mu          sync.Mutex
	subscribers map[string]*Subscriber
	ttl         time.Duration
}

func NewRegistry() *Registry {
	return &Registry{
		subscribers: make(map[string]*Subscriber),
		ttl:         DefaultTTL,
	}
}

// Subscribe opens a new push channel for an email. A later subscribe wins:
// any prior channel for the same email is closed without further notice.
func (r *Registry) Subscribe(email string) *Subscriber {
	s := &Subscriber{
		email:   email,
		expires: time.Now().Add(r.ttl),
		c:       make(chan Notification, subscriberBuffer),
	}

	r.mu.Lock()
	old := r.subscribers[email]
	r.subscribers[email] = s
	if old != nil {
		old.close()
	}
	r.mu.Unlock()

	return s
}

// Publish delivers a notification to the live channel of an email. A
// missing subscription fails with ErrNoActiveSubscription; the caller
// treats that as the recipient being offline. A subscriber whose buffer is
// full is torn down and the delivery reported as failed.
func (r *Registry) Publish(email string, n Notification) error {
	// Sends and closes are both serialized on the mutex, so a publish can
	// never hit a channel that a concurrent subscribe or teardown just
	// closed.
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.subscribers[email]
	if !ok {
		return ErrNoActiveSubscription
	}

	select {
	case s.c <- n:
		return nil
	default:
		delete(r.subscribers, email)
		s.close()
		return ErrDeliveryFailed
	}
}

// Unsubscribe removes a subscription. The entry is removed only when it
// still maps to the given subscriber, so a completion callback of a
// replaced channel cannot tear down its successor.
func (r *Registry) Unsubscribe(email string, s *Subscriber) {
	r.mu.Lock()
	if cur, ok := r.subscribers[email]; ok && cur == s {
		delete(r.subscribers, email)
	}
	s.close()
	r.mu.Unlock()
}

// Len returns the number of live subscriptions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subscribers)
}
