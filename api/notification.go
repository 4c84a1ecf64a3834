package api

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

const heartbeatInterval = 15 * time.Second

// subscribe attaches the calling user to a long-lived server-sent-events
// stream. A later subscribe for the same email takes the stream over; this
// handler then just sees its channel close and returns.
func (s *Server) subscribe(c *gin.Context) {
	requester := c.GetString("requester")

	sub := s.registry.Subscribe(requester)
	defer s.registry.Unsubscribe(requester, sub)

	log.WithField("subscriber", requester).Debug("push subscription opened")

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	ttl := time.NewTimer(time.Until(sub.Deadline()))
	defer ttl.Stop()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()

	c.Stream(func(w io.Writer) bool {
		select {
		case n, ok := <-sub.C():
			if !ok {
				return false
			}
			c.SSEvent("notification", n)
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		case <-ttl.C:
			return false
		case <-clientGone:
			return false
		}
	})
}
