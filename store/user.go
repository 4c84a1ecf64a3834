package store

import (
	"github.com/jinzhu/gorm"

	"github.com/reqsync/reqsync-api/schema"
)

// CreateUser registers a new account with the default USER role. The
// password is expected to be hashed already.
func (s *ReqsyncStore) CreateUser(email, hashedPassword string) (*schema.User, error) {
	var existing schema.User
	err := s.ormDB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	} else if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	var userRole schema.Role
	if err := s.ormDB.Where("role_name = ?", schema.RoleUser).First(&userRole).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	u := schema.User{
		Email:    email,
		Password: hashedPassword,
		Roles:    []schema.Role{userRole},
	}

	if err := s.ormDB.Create(&u).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

// GetUser returns the user of a given email with its role set preloaded.
func (s *ReqsyncStore) GetUser(email string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Preload("Roles").Where("email = ?", email).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateUserProfile updates the profile fields that are set in the update.
// The email itself is immutable.
func (s *ReqsyncStore) UpdateUserProfile(email string, update UserProfileUpdate) (*schema.User, error) {
	u, err := s.GetUser(email)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.Area != nil {
		u.Area = *update.Area
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.Avatar != nil {
		u.Avatar = update.Avatar
	}

	if err := s.ormDB.Save(u).Error; err != nil {
		return nil, err
	}

	return u, nil
}

// DeleteUser removes an account and everything hanging off it. Dependent
// rows are deleted explicitly since the auxiliary tables are not covered by
// database-level cascades.
func (s *ReqsyncStore) DeleteUser(email string) error {
	u, err := s.GetUser(email)
	if err != nil {
		return err
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var v schema.Volunteer
	err = tx.Where("volunteer_email = ?", email).First(&v).Error
	if err == nil {
		if err := deleteVolunteerRows(tx, &v); err != nil {
			tx.Rollback()
			return err
		}
	} else if !gorm.IsRecordNotFoundError(err) {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(schema.HelpRequest{}, "user_email = ?", email).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Exec("DELETE FROM user_roles WHERE user_email = ?", email).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(schema.User{}, "email = ?", u.Email).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
