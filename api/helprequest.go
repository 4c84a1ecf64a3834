package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reqsync/reqsync-api/schema"
	"github.com/reqsync/reqsync-api/store"
)

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return 0, false
	}
	return uint(id), true
}

// submitHelpRequest is the API for asking help from volunteers. The caller
// acquires the HELPREQUESTER role on the way unless it conflicts with the
// VOLUNTEER role, and the created request is fanned out to all volunteers
// in the background.
func (s *Server) submitHelpRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		Area     string `json:"area" binding:"required"`
		HelpType string `json:"help_type" binding:"required"`
		Message  string `json:"message" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.GrantHelpRequesterRole(requester); err != nil {
		switch err {
		case store.ErrUserNotFound:
			abortWithEncoding(c, http.StatusUnauthorized, errorUserNotFound)
		case store.ErrRoleConflict:
			abortWithEncoding(c, http.StatusBadRequest, errorRoleConflict)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	req, err := s.store.CreateHelpRequest(requester, store.HelpRequestForm{
		Name:     params.Name,
		Phone:    params.Phone,
		Area:     params.Area,
		HelpType: params.HelpType,
		Message:  params.Message,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.background.OnHelpRequestCreated(req)

	c.JSON(http.StatusCreated, gin.H{
		"result": req,
	})
}

// listHelpRequests returns the request pool for volunteers and the own
// requests for everyone else.
func (s *Server) listHelpRequests(c *gin.Context) {
	requester := c.GetString("requester")

	u, err := s.store.GetUser(requester)
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusUnauthorized, errorUserNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	var requests []schema.HelpRequest
	if u.HasRole(schema.RoleVolunteer) {
		requests, err = s.store.ListHelpRequests()
	} else {
		requests, err = s.store.ListHelpRequestsByUser(requester)
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": requests,
	})
}

// deleteHelpRequesterRole drops the HELPREQUESTER role of the calling user
func (s *Server) deleteHelpRequesterRole(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = c.GetString("requester")
	}

	if err := s.store.RevokeRole(email, schema.RoleHelpRequester); err != nil {
		switch err {
		case store.ErrUserNotFound:
			abortWithEncoding(c, http.StatusBadRequest, errorUserNotFound)
		case store.ErrRoleNotHeld:
			abortWithEncoding(c, http.StatusBadRequest, errorRoleNotHeld)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// deleteHelpRequest removes a help request owned by the calling user
func (s *Server) deleteHelpRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := s.store.DeleteHelpRequest(requester, id); err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		case store.ErrNotRequestOwner:
			abortWithEncoding(c, http.StatusForbidden, errorNotRequestOwner)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// confirmResolution is the API for a volunteer to confirm a help request
// is fulfilled. The requester is notified by email in the background.
func (s *Server) confirmResolution(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	v, err := s.store.GetVolunteerByUser(requester)
	if err != nil {
		if err == store.ErrVolunteerNotFound {
			abortWithEncoding(c, http.StatusForbidden, errorVolunteerNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	req, err := s.store.ConfirmResolution(id, v.ID)
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		case store.ErrVolunteerNotFound:
			abortWithEncoding(c, http.StatusForbidden, errorVolunteerNotFound)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidTransition)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.background.OnRequestResolved(req, v)

	c.JSON(http.StatusOK, gin.H{
		"result": req,
	})
}

// reportIssue is the API for a requester to escalate an unresolved help
// request. All volunteers are notified again in the background.
func (s *Server) reportIssue(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Description    string `json:"description" binding:"required"`
		VolunteerEmail string `json:"volunteer_email"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	issue, err := s.store.CreateIssue(requester, params.Description, params.VolunteerEmail)
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusUnauthorized, errorUserNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.background.OnIssueReported(issue)

	c.JSON(http.StatusCreated, gin.H{
		"result": issue,
	})
}

// getIssue returns a single issue report by id
func (s *Server) getIssue(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	issue, err := s.store.GetIssue(id)
	if err != nil {
		if err == store.ErrIssueNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorIssueNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": issue,
	})
}
