package store

import (
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/suite"

	"github.com/reqsync/reqsync-api/schema"
)

type HelpRequestTestSuite struct {
	suite.Suite
	ormDB *gorm.DB
	store *ReqsyncStore
}

func (s *HelpRequestTestSuite) SetupTest() {
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

func (s *HelpRequestTestSuite) TearDownTest() {
	s.ormDB.Close()
}

func (s *HelpRequestTestSuite) createUser(email string) {
	_, err := s.store.CreateUser(email, "hashed-password")
	s.Require().NoError(err)

	name := "Test User"
	phone := "555-0100"
	area := "Downtown"
	_, err = s.store.UpdateUserProfile(email, UserProfileUpdate{
		Name:  &name,
		Phone: &phone,
		Area:  &area,
	})
	s.Require().NoError(err)
}

func (s *HelpRequestTestSuite) createRequest(email string) *schema.HelpRequest {
	req, err := s.store.CreateHelpRequest(email, HelpRequestForm{
		Name:     "Test User",
		Phone:    "555-0100",
		Area:     "Downtown",
		HelpType: "Medical",
		Message:  "Need a wheelchair",
	})
	s.Require().NoError(err)
	return req
}

func (s *HelpRequestTestSuite) createVolunteer(email string) *schema.Volunteer {
	s.createUser(email)
	v, err := s.store.GrantVolunteerRole(email, VolunteerProfile{About: "around"})
	s.Require().NoError(err)
	return v
}

func (s *HelpRequestTestSuite) TestCreateHelpRequest() {
	s.createUser("asha@example.com")

	req := s.createRequest("asha@example.com")
	s.Equal(schema.REQUEST_PENDING, req.Status)
	s.False(req.Resolved)

	got, err := s.store.GetHelpRequest(req.ID)
	s.NoError(err)
	s.Equal("asha@example.com", got.UserEmail)
	s.Equal("Medical", got.HelpType)
}

func (s *HelpRequestTestSuite) TestCreateHelpRequestUnknownUser() {
	_, err := s.store.CreateHelpRequest("ghost@example.com", HelpRequestForm{})
	s.Equal(ErrUserNotFound, err)
}

func (s *HelpRequestTestSuite) TestGetPendingRequestByUser() {
	s.createUser("asha@example.com")
	v := s.createVolunteer("v1@example.com")

	first := s.createRequest("asha@example.com")
	second := s.createRequest("asha@example.com")

	_, err := s.store.ConfirmResolution(second.ID, v.ID)
	s.Require().NoError(err)

	pending, err := s.store.GetPendingRequestByUser("asha@example.com")
	s.NoError(err)
	s.Equal(first.ID, pending.ID)

	_, err = s.store.ConfirmResolution(first.ID, v.ID)
	s.Require().NoError(err)

	_, err = s.store.GetPendingRequestByUser("asha@example.com")
	s.Equal(ErrRequestNotFound, err)
}

func (s *HelpRequestTestSuite) TestDeleteHelpRequestOwnerOnly() {
	s.createUser("asha@example.com")
	s.createUser("other@example.com")

	req := s.createRequest("asha@example.com")

	s.Equal(ErrNotRequestOwner, s.store.DeleteHelpRequest("other@example.com", req.ID))

	s.NoError(s.store.DeleteHelpRequest("asha@example.com", req.ID))

	_, err := s.store.GetHelpRequest(req.ID)
	s.Equal(ErrRequestNotFound, err)
}

func (s *HelpRequestTestSuite) TestConfirmResolution() {
	s.createUser("asha@example.com")
	v := s.createVolunteer("v1@example.com")

	req := s.createRequest("asha@example.com")

	resolved, err := s.store.ConfirmResolution(req.ID, v.ID)
	s.NoError(err)
	s.Equal(schema.REQUEST_RESOLVED, resolved.Status)
	s.True(resolved.Resolved)

	resolutions, err := s.store.ListResolutionsByVolunteer(v.ID)
	s.NoError(err)
	s.Require().Len(resolutions, 1)
	s.Equal(req.ID, resolutions[0].RequestID)
	s.Equal(v.ID, resolutions[0].VolunteerID)
}

func (s *HelpRequestTestSuite) TestConfirmResolutionOnlyOnce() {
	s.createUser("asha@example.com")
	v := s.createVolunteer("v1@example.com")
	v2 := s.createVolunteer("v2@example.com")

	req := s.createRequest("asha@example.com")

	_, err := s.store.ConfirmResolution(req.ID, v.ID)
	s.Require().NoError(err)

	// a second confirmation is rejected and writes no audit row
	_, err = s.store.ConfirmResolution(req.ID, v2.ID)
	s.Equal(ErrInvalidTransition, err)

	resolutions, err := s.store.ListResolutionsByVolunteer(v2.ID)
	s.NoError(err)
	s.Empty(resolutions)
}

func (s *HelpRequestTestSuite) TestConfirmResolutionUnknownRequest() {
	v := s.createVolunteer("v1@example.com")

	_, err := s.store.ConfirmResolution(999, v.ID)
	s.Equal(ErrRequestNotFound, err)
}

func (s *HelpRequestTestSuite) TestConfirmResolutionUnknownVolunteer() {
	s.createUser("asha@example.com")
	req := s.createRequest("asha@example.com")

	_, err := s.store.ConfirmResolution(req.ID, 999)
	s.Equal(ErrVolunteerNotFound, err)
}

func (s *HelpRequestTestSuite) TestCreateIssue() {
	s.createUser("asha@example.com")
	s.createRequest("asha@example.com")

	issue, err := s.store.CreateIssue("asha@example.com", "Nobody showed up", "v1@example.com")
	s.NoError(err)
	s.NotZero(issue.ID)
	s.False(issue.ReportedAt.IsZero())

	got, err := s.store.GetIssue(issue.ID)
	s.NoError(err)
	s.Equal("asha@example.com", got.ReporterEmail)
	s.Equal("Nobody showed up", got.Description)
}

func (s *HelpRequestTestSuite) TestCreateIssueUnknownReporter() {
	_, err := s.store.CreateIssue("ghost@example.com", "still waiting", "")
	s.Equal(ErrUserNotFound, err)
}

func (s *HelpRequestTestSuite) TestDeleteUserRemovesRequests() {
	s.createUser("asha@example.com")
	req := s.createRequest("asha@example.com")

	s.NoError(s.store.DeleteUser("asha@example.com"))

	_, err := s.store.GetUser("asha@example.com")
	s.Equal(ErrUserNotFound, err)

	_, err = s.store.GetHelpRequest(req.ID)
	s.Equal(ErrRequestNotFound, err)
}

func TestHelpRequestTestSuite(t *testing.T) {
	suite.Run(t, new(HelpRequestTestSuite))
}
