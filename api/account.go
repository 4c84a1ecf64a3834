package api

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqsync/reqsync-api/schema"
	"github.com/reqsync/reqsync-api/store"
)

func roleNames(u *schema.User) []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// userProfile is the API to query the profile of the calling user. The
// payload depends on the role set: volunteers additionally get their
// volunteering profile and the open request pool, help requesters get
// their own requests.
func (s *Server) userProfile(c *gin.Context) {
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

	profile := gin.H{
		"email": u.Email,
		"name":  u.Name,
		"phone": u.Phone,
		"area":  u.Area,
		"bio":   u.Bio,
		"roles": roleNames(u),
	}
	if u.Avatar != nil {
		profile["profile_picture"] = base64.StdEncoding.EncodeToString(u.Avatar)
	}

	switch {
	case u.HasRole(schema.RoleVolunteer):
		v, err := s.store.GetVolunteerByUser(u.Email)
		if shouldInterupt(err, c) {
			return
		}

		types, skills, err := s.store.GetVolunteerTags(v.ID)
		if shouldInterupt(err, c) {
			return
		}

		requests, err := s.store.ListHelpRequests()
		if shouldInterupt(err, c) {
			return
		}

		profile["volunteer"] = v
		profile["volunteering_types"] = types
		profile["skills"] = skills
		profile["help_requests"] = requests

	case u.HasRole(schema.RoleHelpRequester):
		requests, err := s.store.ListHelpRequestsByUser(u.Email)
		if shouldInterupt(err, c) {
			return
		}

		profile["help_requests"] = requests
	}

	c.JSON(http.StatusOK, gin.H{
		"result": profile,
	})
}

// updateUserProfile is the API to update profile fields of the calling
// user. The email itself can not be changed.
func (s *Server) updateUserProfile(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Name           *string `json:"name"`
		Phone          *string `json:"phone"`
		Area           *string `json:"area"`
		Bio            *string `json:"bio"`
		ProfilePicture *string `json:"profile_picture"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	update := store.UserProfileUpdate{
		Name:  params.Name,
		Phone: params.Phone,
		Area:  params.Area,
		Bio:   params.Bio,
	}

	if params.ProfilePicture != nil {
		avatar, err := base64.StdEncoding.DecodeString(*params.ProfilePicture)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		update.Avatar = avatar
	}

	u, err := s.store.UpdateUserProfile(requester, update)
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusUnauthorized, errorUserNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": u,
	})
}

// deleteUser removes the calling user's account permanently
func (s *Server) deleteUser(c *gin.Context) {
	requester := c.GetString("requester")

	if err := s.store.DeleteUser(requester); err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusUnauthorized, errorUserNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
