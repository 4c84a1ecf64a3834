package schema

import (
	"time"
)

const (
	REQUEST_PENDING  = "PENDING"
	REQUEST_RESOLVED = "RESOLVED"
)

// HelpRequest is a call for help posted by a help requester. Its status
// moves from PENDING to RESOLVED exactly once, when a volunteer confirms
// the request is fulfilled.
type HelpRequest struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	UserEmail string    `json:"user_email" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"column:phone_number;not null"`
	Area      string    `json:"area" gorm:"column:area_name;not null"`
	HelpType  string    `json:"help_type" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Resolved  bool      `json:"resolved" gorm:"column:is_resolved"`
	Status    string    `json:"status" gorm:"not null;default:'PENDING'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RequestHelperIssue is an escalation raised by a requester against a help
// request that stays unresolved. It triggers a second notification wave to
// all volunteers.
type RequestHelperIssue struct {
	ID             uint      `json:"id" gorm:"primary_key"`
	Description    string    `json:"description" gorm:"type:text;not null"`
	VolunteerEmail string    `json:"volunteer_email"`
	ReporterEmail  string    `json:"reporter_email" gorm:"column:help_issuer_email;not null"`
	ReportedAt     time.Time `json:"reported_at" gorm:"not null"`
}

// VolunteerResolution is the append-only audit record of who resolved which
// request. Rows are never updated after creation.
type VolunteerResolution struct {
	ID          uint      `json:"id" gorm:"primary_key"`
	VolunteerID uint      `json:"volunteer_id" gorm:"not null"`
	RequestID   uint      `json:"request_id" gorm:"not null"`
	ResolvedAt  time.Time `json:"resolved_at" gorm:"not null"`
}
