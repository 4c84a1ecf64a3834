package api

import (
	"github.com/reqsync/reqsync-api/external/mail"
	"github.com/reqsync/reqsync-api/notification"
	"github.com/reqsync/reqsync-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1002: "user is not authenticated",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrEmailTaken.Error(),
		1101: store.ErrUserNotFound.Error(),
		1102: "invalid email or password",

		1200: store.ErrRoleConflict.Error(),
		1201: store.ErrRoleNotHeld.Error(),
		1202: store.ErrIncompleteProfile.Error(),
		1203: "unknown volunteering type",

		1300: store.ErrRequestNotFound.Error(),
		1301: store.ErrInvalidTransition.Error(),
		1302: store.ErrNotRequestOwner.Error(),
		1303: store.ErrVolunteerNotFound.Error(),
		1304: store.ErrIssueNotFound.Error(),

		1400: mail.ErrMessageNotSent.Error(),
		1401: notification.ErrNoActiveSubscription.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorNotAuthenticated           = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmailTaken         = errorJSON(1100)
	errorUserNotFound       = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)

	errorRoleConflict            = errorJSON(1200)
	errorRoleNotHeld             = errorJSON(1201)
	errorIncompleteProfile       = errorJSON(1202)
	errorUnknownVolunteeringType = errorJSON(1203)

	errorRequestNotFound   = errorJSON(1300)
	errorInvalidTransition = errorJSON(1301)
	errorNotRequestOwner   = errorJSON(1302)
	errorVolunteerNotFound = errorJSON(1303)
	errorIssueNotFound     = errorJSON(1304)

	errorMessageNotSent = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
