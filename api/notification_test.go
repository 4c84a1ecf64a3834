package api

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/reqsync/reqsync-api/notification"
)

// sseRecorder adds the CloseNotifier surface the streaming handler needs,
// which httptest.ResponseRecorder does not carry.
type sseRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newSSERecorder() *sseRecorder {
	return &sseRecorder{
		ResponseRecorder: httptest.NewRecorder(),
		closed:           make(chan bool),
	}
}

func (r *sseRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func TestSubscribeStreamsNotifications(t *testing.T) {
	registry := notification.NewRegistry()

	s := Server{registry: registry}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth("v1@example.com"))
	router.GET("/subscribe", s.subscribe)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest("GET", "/subscribe", nil).WithContext(ctx)
	w := newSSERecorder()

	served := make(chan struct{})
	go func() {
		router.ServeHTTP(w, req)
		close(served)
	}()

	// wait for the stream to register before publishing
	for i := 0; i < 100 && registry.Len() == 0; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 1, registry.Len(), "subscription not registered")

	err := registry.Publish("v1@example.com", notification.Notification{
		Email:     "v1@example.com",
		Message:   "A new help request for Medical has been posted.",
		Timestamp: 1700000000000,
	})
	assert.NoError(t, err)

	// let the handler flush the event, then hang up
	time.Sleep(50 * time.Millisecond)
	cancel()
	close(w.closed)

	select {
	case <-served:
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not terminate on client disconnect")
	}

	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"), "wrong content type")

	body := w.Body.String()
	assert.True(t, strings.Contains(body, "event:notification"), "no notification event in stream")
	assert.True(t, strings.Contains(body, "A new help request for Medical has been posted."), "wrong event payload")

	// the hung-up stream must have dropped its registration
	assert.Equal(t, 0, registry.Len(), "subscription leaked")
}
