package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/reqsync/reqsync-api/schema"
)

// CreateHelpRequest creates a help request entry owned by the given user.
// The caller is responsible for granting the HELPREQUESTER role first.
func (s *ReqsyncStore) CreateHelpRequest(email string, form HelpRequestForm) (*schema.HelpRequest, error) {
	if _, err := s.GetUser(email); err != nil {
		return nil, err
	}

	req := schema.HelpRequest{
		UserEmail: email,
		Name:      form.Name,
		Phone:     form.Phone,
		Area:      form.Area,
		HelpType:  form.HelpType,
		Message:   form.Message,
		Status:    schema.REQUEST_PENDING,
	}

	if err := s.ormDB.Create(&req).Error; err != nil {
		return nil, err
	}

	return &req, nil
}

// GetHelpRequest returns a help request by id.
func (s *ReqsyncStore) GetHelpRequest(id uint) (*schema.HelpRequest, error) {
	var req schema.HelpRequest
	if err := s.ormDB.Where("id = ?", id).First(&req).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// ListHelpRequests returns all help requests, newest first.
func (s *ReqsyncStore) ListHelpRequests() ([]schema.HelpRequest, error) {
	reqs := []schema.HelpRequest{}
	if err := s.ormDB.Order("created_at desc").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListHelpRequestsByUser returns the help requests owned by a user.
func (s *ReqsyncStore) ListHelpRequestsByUser(email string) ([]schema.HelpRequest, error) {
	reqs := []schema.HelpRequest{}
	if err := s.ormDB.Where("user_email = ?", email).Order("created_at desc").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// GetPendingRequestByUser returns the most recent unresolved request of a
// user. Used to resolve the original request behind an issue report.
func (s *ReqsyncStore) GetPendingRequestByUser(email string) (*schema.HelpRequest, error) {
	var req schema.HelpRequest
	err := s.ormDB.
		Where("user_email = ? AND status = ?", email, schema.REQUEST_PENDING).
		Order("created_at desc").
		First(&req).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// DeleteHelpRequest removes a help request. Only the owner may delete it.
func (s *ReqsyncStore) DeleteHelpRequest(email string, id uint) error {
	req, err := s.GetHelpRequest(id)
	if err != nil {
		return err
	}
	if req.UserEmail != email {
		return ErrNotRequestOwner
	}
	return s.ormDB.Delete(schema.HelpRequest{}, "id = ?", id).Error
}

// ConfirmResolution flips a help request from PENDING to RESOLVED and
// writes the audit row, in one transaction. A request that is not PENDING
// is rejected with ErrInvalidTransition; the flip happens exactly once.
func (s *ReqsyncStore) ConfirmResolution(requestID, volunteerID uint) (*schema.HelpRequest, error) {
	if _, err := s.GetVolunteer(volunteerID); err != nil {
		return nil, err
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var req schema.HelpRequest
	if err := tx.Where("id = ?", requestID).First(&req).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	// Guard the flip with the status predicate so two concurrent
	// confirmations cannot both succeed.
	now := time.Now()
	result := tx.Model(schema.HelpRequest{}).
		Where("id = ? AND status = ?", requestID, schema.REQUEST_PENDING).
		Updates(map[string]interface{}{
			"status":      schema.REQUEST_RESOLVED,
			"is_resolved": true,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrInvalidTransition
	}

	resolution := schema.VolunteerResolution{
		VolunteerID: volunteerID,
		RequestID:   requestID,
		ResolvedAt:  now,
	}
	if err := tx.Create(&resolution).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	req.Status = schema.REQUEST_RESOLVED
	req.Resolved = true
	return &req, nil
}

// ListResolutionsByVolunteer returns the audit trail of a volunteer.
func (s *ReqsyncStore) ListResolutionsByVolunteer(volunteerID uint) ([]schema.VolunteerResolution, error) {
	resolutions := []schema.VolunteerResolution{}
	if err := s.ormDB.Where("volunteer_id = ?", volunteerID).Order("resolved_at desc").Find(&resolutions).Error; err != nil {
		return nil, err
	}
	return resolutions, nil
}
