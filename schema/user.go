package schema

import (
	"time"
)

const (
	RoleUser          = "USER"
	RoleHelpRequester = "HELPREQUESTER"
	RoleVolunteer     = "VOLUNTEER"
)

// Role is a named capability grant for user accounts. The set of roles is
// fixed and seeded at process start.
type Role struct {
	ID   uint   `json:"id" gorm:"primary_key"`
	Name string `json:"name" gorm:"column:role_name;unique_index"`
}

// User is an account of the reqsync system. Email is the primary key and
// never changes after signup.
type User struct {
	Email     string    `json:"email" gorm:"primary_key"`
	Password  string    `json:"-" gorm:"not null"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone" gorm:"column:phone_number"`
	Area      string    `json:"area" gorm:"column:area_name"`
	Bio       string    `json:"bio" gorm:"column:short_bio;type:text"`
	Avatar    []byte    `json:"-" gorm:"column:profile_picture"`
	Roles     []Role    `json:"roles" gorm:"many2many:user_roles;association_jointable_foreignkey:role_id;jointable_foreignkey:user_email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasRole reports whether a role name is in the user's role set.
func (u User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// HasProfile reports whether the contact fields required for volunteering
// are filled in.
func (u User) HasProfile() bool {
	return u.Name != "" && u.Phone != "" && u.Area != ""
}
