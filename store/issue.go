package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/reqsync/reqsync-api/schema"
)

// CreateIssue records an escalation raised by a requester against their
// unresolved help request.
func (s *ReqsyncStore) CreateIssue(reporterEmail, description, volunteerEmail string) (*schema.RequestHelperIssue, error) {
	if _, err := s.GetUser(reporterEmail); err != nil {
		return nil, err
	}

	issue := schema.RequestHelperIssue{
		Description:    description,
		VolunteerEmail: volunteerEmail,
		ReporterEmail:  reporterEmail,
		ReportedAt:     time.Now(),
	}

	if err := s.ormDB.Create(&issue).Error; err != nil {
		return nil, err
	}

	return &issue, nil
}

// GetIssue returns an issue report by id.
func (s *ReqsyncStore) GetIssue(id uint) (*schema.RequestHelperIssue, error) {
	var issue schema.RequestHelperIssue
	if err := s.ormDB.Where("id = ?", id).First(&issue).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrIssueNotFound
		}
		return nil, err
	}
	return &issue, nil
}
