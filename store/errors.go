package store

import "fmt"

var (
	ErrEmailTaken        = fmt.Errorf("the email is already registered")
	ErrUserNotFound      = fmt.Errorf("user not found")
	ErrRoleNotFound      = fmt.Errorf("role not found")
	ErrRoleConflict      = fmt.Errorf("the role conflicts with a role the user already holds")
	ErrRoleNotHeld       = fmt.Errorf("the user does not hold this role")
	ErrIncompleteProfile = fmt.Errorf("name, phone and area must be set before volunteering")
	ErrVolunteerNotFound = fmt.Errorf("volunteer not found")
	ErrRequestNotFound   = fmt.Errorf("help request not found")
	ErrIssueNotFound     = fmt.Errorf("issue report not found")
	ErrInvalidTransition = fmt.Errorf("the help request is already resolved")
	ErrNotRequestOwner   = fmt.Errorf("the help request belongs to another user")
)
