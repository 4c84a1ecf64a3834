package store

import (
	"github.com/jinzhu/gorm"

	"github.com/reqsync/reqsync-api/schema"
)

// GetVolunteer returns a volunteer profile by id.
func (s *ReqsyncStore) GetVolunteer(id uint) (*schema.Volunteer, error) {
	var v schema.Volunteer
	if err := s.ormDB.Where("id = ?", id).First(&v).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrVolunteerNotFound
		}
		return nil, err
	}
	return &v, nil
}

// GetVolunteerByUser returns the volunteer profile of a user.
func (s *ReqsyncStore) GetVolunteerByUser(email string) (*schema.Volunteer, error) {
	var v schema.Volunteer
	if err := s.ormDB.Where("volunteer_email = ?", email).First(&v).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrVolunteerNotFound
		}
		return nil, err
	}
	return &v, nil
}

// ListVolunteers returns the full current volunteer set.
func (s *ReqsyncStore) ListVolunteers() ([]schema.Volunteer, error) {
	volunteers := []schema.Volunteer{}
	if err := s.ormDB.Find(&volunteers).Error; err != nil {
		return nil, err
	}
	return volunteers, nil
}

// GetVolunteerTags returns the volunteering-type and skill tags of a
// volunteer.
func (s *ReqsyncStore) GetVolunteerTags(volunteerID uint) ([]schema.VolunteerType, []schema.VolunteerSkill, error) {
	types := []schema.VolunteerType{}
	if err := s.ormDB.Where("volunteer_id = ?", volunteerID).Find(&types).Error; err != nil {
		return nil, nil, err
	}

	skills := []schema.VolunteerSkill{}
	if err := s.ormDB.Where("volunteer_id = ?", volunteerID).Find(&skills).Error; err != nil {
		return nil, nil, err
	}

	return types, skills, nil
}
