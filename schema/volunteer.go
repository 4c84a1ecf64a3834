package schema

import (
	"time"
)

// VolunteeringType is a closed set of volunteering categories.
type VolunteeringType string

const (
	TypeMedicalAssistance     VolunteeringType = "MEDICAL_ASSISTANCE"
	TypePatientSupport        VolunteeringType = "PATIENT_SUPPORT"
	TypeAdministrativeSupport VolunteeringType = "ADMINISTRATIVE_SUPPORT"
	TypeCommunityOutreach     VolunteeringType = "COMMUNITY_OUTREACH"
	TypeTechnicalSupport      VolunteeringType = "TECHNICAL_SUPPORT"
)

// Valid reports whether t is one of the defined volunteering types.
func (t VolunteeringType) Valid() bool {
	switch t {
	case TypeMedicalAssistance, TypePatientSupport, TypeAdministrativeSupport,
		TypeCommunityOutreach, TypeTechnicalSupport:
		return true
	}
	return false
}

// Volunteer is the one-to-one volunteering profile of a user. It exists
// only while the user holds the VOLUNTEER role; contact fields are copied
// from the user record at signup time.
type Volunteer struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	UserEmail string    `json:"user_email" gorm:"column:volunteer_email;unique_index;not null"`
	Name      string    `json:"name" gorm:"column:volunteer_name;not null"`
	Phone     string    `json:"phone" gorm:"column:phone_number;not null"`
	Area      string    `json:"area" gorm:"column:area_name;not null"`
	About     string    `json:"about" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// VolunteerType is one volunteering-type tag of a volunteer. Tag rows live
// in their own table and are cleaned up explicitly when the volunteer role
// is revoked.
type VolunteerType struct {
	ID          uint             `json:"-" gorm:"primary_key"`
	VolunteerID uint             `json:"-" gorm:"not null;index"`
	Type        VolunteeringType `json:"type" gorm:"column:volunteering_type;not null"`
}

// VolunteerSkill is one free-form skill tag of a volunteer.
type VolunteerSkill struct {
	ID          uint   `json:"-" gorm:"primary_key"`
	VolunteerID uint   `json:"-" gorm:"not null;index"`
	Skill       string `json:"skill" gorm:"not null"`
}
