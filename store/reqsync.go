package store

import (
	"github.com/jinzhu/gorm"

	"github.com/reqsync/reqsync-api/schema"
)

// UserProfileUpdate carries the optional profile fields of an update call.
// Nil pointers leave the stored value untouched.
type UserProfileUpdate struct {
	Name   *string
	Phone  *string
	Area   *string
	Bio    *string
	Avatar []byte
}

// VolunteerProfile is the submitted volunteering profile of a signup.
type VolunteerProfile struct {
	Types  []schema.VolunteeringType
	Skills []string
	About  string
}

// HelpRequestForm is the submitted content of a new help request.
type HelpRequestForm struct {
	Name     string
	Phone    string
	Area     string
	HelpType string
	Message  string
}

// reqsync main datastore
type ReqsyncCore interface {
	Ping() error
	Migrate() error

	// User
	CreateUser(email, hashedPassword string) (*schema.User, error)
	GetUser(email string) (*schema.User, error)
	UpdateUserProfile(email string, update UserProfileUpdate) (*schema.User, error)
	DeleteUser(email string) error

	// Role
	GrantHelpRequesterRole(email string) error
	GrantVolunteerRole(email string, profile VolunteerProfile) (*schema.Volunteer, error)
	RevokeRole(email, roleName string) error

	// Help request
	CreateHelpRequest(email string, form HelpRequestForm) (*schema.HelpRequest, error)
	GetHelpRequest(id uint) (*schema.HelpRequest, error)
	ListHelpRequests() ([]schema.HelpRequest, error)
	ListHelpRequestsByUser(email string) ([]schema.HelpRequest, error)
	GetPendingRequestByUser(email string) (*schema.HelpRequest, error)
	DeleteHelpRequest(email string, id uint) error
	ConfirmResolution(requestID, volunteerID uint) (*schema.HelpRequest, error)
	ListResolutionsByVolunteer(volunteerID uint) ([]schema.VolunteerResolution, error)

	// Volunteer
	GetVolunteer(id uint) (*schema.Volunteer, error)
	GetVolunteerByUser(email string) (*schema.Volunteer, error)
	ListVolunteers() ([]schema.Volunteer, error)
	GetVolunteerTags(volunteerID uint) ([]schema.VolunteerType, []schema.VolunteerSkill, error)

	// Issue
	CreateIssue(reporterEmail, description, volunteerEmail string) (*schema.RequestHelperIssue, error)
	GetIssue(id uint) (*schema.RequestHelperIssue, error)
}

// ReqsyncStore is an implementation of ReqsyncCore
type ReqsyncStore struct {
	ormDB *gorm.DB
}

func NewReqsyncStore(ormDB *gorm.DB) *ReqsyncStore {
	return &ReqsyncStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *ReqsyncStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// Migrate creates or updates all tables and seeds the fixed role set.
func (s *ReqsyncStore) Migrate() error {
	if err := s.ormDB.AutoMigrate(
		&schema.Role{},
		&schema.User{},
		&schema.HelpRequest{},
		&schema.Volunteer{},
		&schema.VolunteerType{},
		&schema.VolunteerSkill{},
		&schema.RequestHelperIssue{},
		&schema.VolunteerResolution{},
	).Error; err != nil {
		return err
	}

	for _, name := range []string{schema.RoleUser, schema.RoleHelpRequester, schema.RoleVolunteer} {
		var role schema.Role
		err := s.ormDB.Where("role_name = ?", name).First(&role).Error
		if gorm.IsRecordNotFoundError(err) {
			if err := s.ormDB.Create(&schema.Role{Name: name}).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	return nil
}
