package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/reqsync/reqsync-api/background"
	"github.com/reqsync/reqsync-api/external/mail"
	"github.com/reqsync/reqsync-api/logmodule"
	"github.com/reqsync/reqsync-api/notification"
	"github.com/reqsync/reqsync-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.ReqsyncCore

	// Live push subscriptions
	registry *notification.Registry

	// Async notification fan-out
	background background.Dispatcher

	// Outgoing email
	mailer mail.Mailer

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(
	s store.ReqsyncCore,
	registry *notification.Registry,
	dispatcher background.Dispatcher,
	mailer mail.Mailer,
	jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         s,
		registry:      registry,
		background:    dispatcher,
		mailer:        mailer,
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/accounts", s.signup)
	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/accounts` and `/auth` will apply the
	// following middleware
	apiRoute.Use(s.authMiddleware())

	userRoute := apiRoute.Group("/user")
	{
		userRoute.GET("/profile", s.userProfile)
		userRoute.PATCH("/profile", s.updateUserProfile)
		userRoute.DELETE("", s.deleteUser)

		// role revocations live here so the help-requests group keeps a
		// clean :id wildcard
		userRoute.DELETE("/roles/help-requester", s.deleteHelpRequesterRole)
		userRoute.DELETE("/roles/volunteer", s.deleteVolunteerRole)
	}

	helpRoute := apiRoute.Group("/help-requests")
	{
		helpRoute.POST("", s.submitHelpRequest)
		helpRoute.GET("", s.listHelpRequests)
		helpRoute.DELETE("/:id", s.deleteHelpRequest)
		helpRoute.PATCH("/:id/resolve", s.confirmResolution)
		helpRoute.POST("/issues", s.reportIssue)
		helpRoute.GET("/issues/:id", s.getIssue)
	}

	volunteerRoute := apiRoute.Group("/volunteers")
	{
		volunteerRoute.POST("", s.addVolunteer)
		volunteerRoute.GET("/resolutions", s.listResolutions)
	}

	notificationRoute := apiRoute.Group("/notifications")
	{
		notificationRoute.GET("/subscribe", s.subscribe)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
