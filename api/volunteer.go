package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqsync/reqsync-api/schema"
	"github.com/reqsync/reqsync-api/store"
)

// addVolunteer is the API for a user to join the volunteer team. The role
// grant and the volunteering profile commit together; the welcome email is
// sent afterwards and its failure does not undo the grant.
func (s *Server) addVolunteer(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		VolunteeringTypes []schema.VolunteeringType `json:"volunteering_types" binding:"required,min=1"`
		Skills            []string                  `json:"skills"`
		About             string                    `json:"about" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	for _, t := range params.VolunteeringTypes {
		if !t.Valid() {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownVolunteeringType)
			return
		}
	}

	v, err := s.store.GrantVolunteerRole(requester, store.VolunteerProfile{
		Types:  params.VolunteeringTypes,
		Skills: params.Skills,
		About:  params.About,
	})
	if err != nil {
		switch err {
		case store.ErrUserNotFound:
			abortWithEncoding(c, http.StatusUnauthorized, errorUserNotFound)
		case store.ErrRoleConflict:
			abortWithEncoding(c, http.StatusBadRequest, errorRoleConflict)
		case store.ErrIncompleteProfile:
			abortWithEncoding(c, http.StatusBadRequest, errorIncompleteProfile)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	result := gin.H{
		"result": v,
	}

	// The role grant is already committed. A failed welcome email is
	// reported to the caller but never rolls the grant back.
	if err := s.mailer.SendVolunteerWelcome(v.UserEmail, v.Name); err != nil {
		log.WithError(err).WithField("volunteer", v.UserEmail).Error("welcome email failed")
		result["warning"] = errorMessageNotSent
	}

	c.JSON(http.StatusCreated, result)
}

// deleteVolunteerRole drops the VOLUNTEER role together with the
// volunteering profile and its tags.
func (s *Server) deleteVolunteerRole(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = c.GetString("requester")
	}

	if err := s.store.RevokeRole(email, schema.RoleVolunteer); err != nil {
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

// listResolutions returns the resolution audit trail of the calling
// volunteer.
func (s *Server) listResolutions(c *gin.Context) {
	requester := c.GetString("requester")

	v, err := s.store.GetVolunteerByUser(requester)
	if err != nil {
		if err == store.ErrVolunteerNotFound {
			abortWithEncoding(c, http.StatusForbidden, errorVolunteerNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	resolutions, err := s.store.ListResolutionsByVolunteer(v.ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": resolutions,
	})
}
