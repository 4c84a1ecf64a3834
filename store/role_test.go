package store

import (
	"math/rand"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/suite"

	"github.com/reqsync/reqsync-api/schema"
)

type RoleTestSuite struct {
	suite.Suite
	ormDB *gorm.DB
	store *ReqsyncStore
}

func (s *RoleTestSuite) SetupTest() {
	ormDB, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		s.T().Fatalf("open test database with error: %s", err)
	}

	s.ormDB = ormDB
	s.store = NewReqsyncStore(ormDB)

	if err := s.store.Migrate(); err != nil {
		s.T().Fatalf("migrate test database with error: %s", err)
	}
}

func (s *RoleTestSuite) TearDownTest() {
	s.ormDB.Close()
}

// createUser registers an account with a complete profile so it is
// eligible for the volunteer role.
func (s *RoleTestSuite) createUser(email string) *schema.User {
	u, err := s.store.CreateUser(email, "hashed-password")
	s.Require().NoError(err)

	name := "Test User"
	phone := "555-0100"
	area := "Downtown"
	u, err = s.store.UpdateUserProfile(email, UserProfileUpdate{
		Name:  &name,
		Phone: &phone,
		Area:  &area,
	})
	s.Require().NoError(err)

	return u
}

func (s *RoleTestSuite) TestCreateUserSeedsUserRole() {
	u := s.createUser("asha@example.com")

	s.True(u.HasRole(schema.RoleUser))
	s.False(u.HasRole(schema.RoleHelpRequester))
	s.False(u.HasRole(schema.RoleVolunteer))
}

func (s *RoleTestSuite) TestCreateUserDuplicateEmail() {
	s.createUser("asha@example.com")

	_, err := s.store.CreateUser("asha@example.com", "another-password")
	s.Equal(ErrEmailTaken, err)
}

func (s *RoleTestSuite) TestGrantHelpRequesterRole() {
	s.createUser("asha@example.com")

	s.NoError(s.store.GrantHelpRequesterRole("asha@example.com"))

	u, err := s.store.GetUser("asha@example.com")
	s.NoError(err)
	s.True(u.HasRole(schema.RoleHelpRequester))

	// granting again is a no-op
	s.NoError(s.store.GrantHelpRequesterRole("asha@example.com"))

	u, err = s.store.GetUser("asha@example.com")
	s.NoError(err)
	s.Len(u.Roles, 2)
}

func (s *RoleTestSuite) TestGrantHelpRequesterRoleUnknownUser() {
	s.Equal(ErrUserNotFound, s.store.GrantHelpRequesterRole("ghost@example.com"))
}

func (s *RoleTestSuite) TestGrantVolunteerRole() {
	s.createUser("v1@example.com")

	v, err := s.store.GrantVolunteerRole("v1@example.com", VolunteerProfile{
		Types:  []schema.VolunteeringType{schema.TypeMedicalAssistance, schema.TypePatientSupport},
		Skills: []string{"first aid", "driving"},
		About:  "Nurse with weekend availability",
	})
	s.NoError(err)
	s.Require().NotNil(v)

	// contact fields are copied from the user profile
	s.Equal("Test User", v.Name)
	s.Equal("555-0100", v.Phone)
	s.Equal("Downtown", v.Area)

	u, err := s.store.GetUser("v1@example.com")
	s.NoError(err)
	s.True(u.HasRole(schema.RoleVolunteer))

	types, skills, err := s.store.GetVolunteerTags(v.ID)
	s.NoError(err)
	s.Len(types, 2)
	s.Len(skills, 2)
}

func (s *RoleTestSuite) TestRolesAreMutuallyExclusive() {
	s.createUser("asha@example.com")
	s.Require().NoError(s.store.GrantHelpRequesterRole("asha@example.com"))

	_, err := s.store.GrantVolunteerRole("asha@example.com", VolunteerProfile{About: "busy"})
	s.Equal(ErrRoleConflict, err)

	s.createUser("v1@example.com")
	_, err = s.store.GrantVolunteerRole("v1@example.com", VolunteerProfile{About: "around"})
	s.Require().NoError(err)

	s.Equal(ErrRoleConflict, s.store.GrantHelpRequesterRole("v1@example.com"))
}

func (s *RoleTestSuite) TestGrantVolunteerRoleIncompleteProfile() {
	_, err := s.store.CreateUser("bare@example.com", "hashed-password")
	s.Require().NoError(err)

	_, err = s.store.GrantVolunteerRole("bare@example.com", VolunteerProfile{About: "eager"})
	s.Equal(ErrIncompleteProfile, err)

	// the rejected grant must leave no volunteer row behind
	_, err = s.store.GetVolunteerByUser("bare@example.com")
	s.Equal(ErrVolunteerNotFound, err)

	u, err := s.store.GetUser("bare@example.com")
	s.NoError(err)
	s.False(u.HasRole(schema.RoleVolunteer))
}

func (s *RoleTestSuite) TestRevokeVolunteerRoleCleansUp() {
	s.createUser("v1@example.com")

	v, err := s.store.GrantVolunteerRole("v1@example.com", VolunteerProfile{
		Types:  []schema.VolunteeringType{schema.TypeCommunityOutreach},
		Skills: []string{"organizing"},
		About:  "Weekends only",
	})
	s.Require().NoError(err)

	s.NoError(s.store.RevokeRole("v1@example.com", schema.RoleVolunteer))

	u, err := s.store.GetUser("v1@example.com")
	s.NoError(err)
	s.False(u.HasRole(schema.RoleVolunteer))
	s.True(u.HasRole(schema.RoleUser))

	_, err = s.store.GetVolunteerByUser("v1@example.com")
	s.Equal(ErrVolunteerNotFound, err)

	types, skills, err := s.store.GetVolunteerTags(v.ID)
	s.NoError(err)
	s.Empty(types)
	s.Empty(skills)
}

func (s *RoleTestSuite) TestRevokeRoleNeverHeld() {
	s.createUser("asha@example.com")

	s.Equal(ErrRoleNotHeld, s.store.RevokeRole("asha@example.com", schema.RoleVolunteer))
	s.Equal(ErrRoleNotHeld, s.store.RevokeRole("asha@example.com", schema.RoleHelpRequester))
}

// TestRandomTransitions drives a random grant/revoke sequence and checks
// that HELPREQUESTER and VOLUNTEER are never held together and USER is
// never lost.
func (s *RoleTestSuite) TestRandomTransitions() {
	s.createUser("walker@example.com")

	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		switch rng.Intn(4) {
		case 0:
			err := s.store.GrantHelpRequesterRole("walker@example.com")
			if err != nil {
				s.Equal(ErrRoleConflict, err)
			}
		case 1:
			_, err := s.store.GrantVolunteerRole("walker@example.com", VolunteerProfile{About: "walking"})
			if err != nil {
				s.Equal(ErrRoleConflict, err)
			}
		case 2:
			err := s.store.RevokeRole("walker@example.com", schema.RoleHelpRequester)
			if err != nil {
				s.Equal(ErrRoleNotHeld, err)
			}
		case 3:
			err := s.store.RevokeRole("walker@example.com", schema.RoleVolunteer)
			if err != nil {
				s.Equal(ErrRoleNotHeld, err)
			}
		}

		u, err := s.store.GetUser("walker@example.com")
		s.Require().NoError(err)
		s.True(u.HasRole(schema.RoleUser))
		s.False(u.HasRole(schema.RoleHelpRequester) && u.HasRole(schema.RoleVolunteer),
			"both exclusive roles held after step %d", i)

		// the volunteer row exists exactly while the role is held
		_, err = s.store.GetVolunteerByUser("walker@example.com")
		if u.HasRole(schema.RoleVolunteer) {
			s.NoError(err)
		} else {
			s.Equal(ErrVolunteerNotFound, err)
		}
	}
}

func TestRoleTestSuite(t *testing.T) {
	suite.Run(t, new(RoleTestSuite))
}
