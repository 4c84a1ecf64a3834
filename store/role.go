package store

import (
	"github.com/jinzhu/gorm"

	"github.com/reqsync/reqsync-api/schema"
)

// getRole looks up a role by name. The role table is seeded at startup, so
// a missing row is a deployment fault rather than a caller error.
func getRole(tx *gorm.DB, name string) (*schema.Role, error) {
	var role schema.Role
	if err := tx.Where("role_name = ?", name).First(&role).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func getUserForUpdate(tx *gorm.DB, email string) (*schema.User, error) {
	var u schema.User
	if err := tx.Preload("Roles").Where("email = ?", email).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GrantHelpRequesterRole adds the HELPREQUESTER role to a user. Granting is
// idempotent, but rejected while the user holds the VOLUNTEER role.
func (s *ReqsyncStore) GrantHelpRequesterRole(email string) error {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	u, err := getUserForUpdate(tx, email)
	if err != nil {
		tx.Rollback()
		return err
	}

	if u.HasRole(schema.RoleVolunteer) {
		tx.Rollback()
		return ErrRoleConflict
	}

	if u.HasRole(schema.RoleHelpRequester) {
		tx.Rollback()
		return nil
	}

	role, err := getRole(tx, schema.RoleHelpRequester)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(u).Association("Roles").Append(*role).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// GrantVolunteerRole adds the VOLUNTEER role to a user and creates its
// one-to-one volunteering profile. The role membership, the volunteer row
// and its tag rows commit in one transaction; a partial state is never
// visible.
func (s *ReqsyncStore) GrantVolunteerRole(email string, profile VolunteerProfile) (*schema.Volunteer, error) {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	u, err := getUserForUpdate(tx, email)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// HELPREQUESTER and VOLUNTEER are mutually exclusive, and volunteering
	// twice makes no sense either.
	if u.HasRole(schema.RoleVolunteer) || u.HasRole(schema.RoleHelpRequester) {
		tx.Rollback()
		return nil, ErrRoleConflict
	}

	if !u.HasProfile() {
		tx.Rollback()
		return nil, ErrIncompleteProfile
	}

	role, err := getRole(tx, schema.RoleVolunteer)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	v := schema.Volunteer{
		UserEmail: u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Area:      u.Area,
		About:     profile.About,
	}
	if err := tx.Create(&v).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, t := range profile.Types {
		if err := tx.Create(&schema.VolunteerType{VolunteerID: v.ID, Type: t}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	for _, skill := range profile.Skills {
		if err := tx.Create(&schema.VolunteerSkill{VolunteerID: v.ID, Skill: skill}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Model(u).Association("Roles").Append(*role).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &v, nil
}

// deleteVolunteerRows removes a volunteer profile and its tag rows. The tag
// tables have no database-level cascade, so the order matters: tags first,
// then the volunteer row.
func deleteVolunteerRows(tx *gorm.DB, v *schema.Volunteer) error {
	if err := tx.Delete(schema.VolunteerType{}, "volunteer_id = ?", v.ID).Error; err != nil {
		return err
	}
	if err := tx.Delete(schema.VolunteerSkill{}, "volunteer_id = ?", v.ID).Error; err != nil {
		return err
	}
	return tx.Delete(schema.Volunteer{}, "id = ?", v.ID).Error
}

// RevokeRole removes a role membership from a user. Revoking VOLUNTEER also
// deletes the volunteer profile and its tag rows, all in one transaction.
// Revoking a role the user never held fails with ErrRoleNotHeld.
func (s *ReqsyncStore) RevokeRole(email, roleName string) error {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	u, err := getUserForUpdate(tx, email)
	if err != nil {
		tx.Rollback()
		return err
	}

	if !u.HasRole(roleName) {
		tx.Rollback()
		return ErrRoleNotHeld
	}

	role, err := getRole(tx, roleName)
	if err != nil {
		tx.Rollback()
		return err
	}

	if roleName == schema.RoleVolunteer {
		var v schema.Volunteer
		err := tx.Where("volunteer_email = ?", email).First(&v).Error
		if err == nil {
			if err := deleteVolunteerRows(tx, &v); err != nil {
				tx.Rollback()
				return err
			}
		} else if !gorm.IsRecordNotFoundError(err) {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Model(u).Association("Roles").Delete(*role).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
