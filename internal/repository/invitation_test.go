//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"
	"github.com/teamEPYC/leave-management-app-sub000/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// InvitationRepositoryTestSuite tests the InvitationRepository
type InvitationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *InvitationRepository
	factories     *testutils.FactorySet

	org  *models.Organization
	role *models.Role
}

// SetupSuite runs before all tests in the suite
func (suite *InvitationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewInvitationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *InvitationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *InvitationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.org).Error)

	suite.role = suite.factories.Role.Create(suite.org.ID, models.RoleEmployee)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.role).Error)
}

// TearDownTest runs after each test
func (suite *InvitationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new invitation
func (suite *InvitationRepositoryTestSuite) TestCreate() {
	invitation := suite.factories.Invitation.Create(suite.org.ID, suite.role.ID, "hire@example.com")

	err := suite.repo.Create(invitation)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, invitation.ID)
	suite.NotZero(invitation.CreatedAt)
}

// TestCreateLowercasesEmail tests that mixed-case emails are stored lowercased
func (suite *InvitationRepositoryTestSuite) TestCreateLowercasesEmail() {
	invitation := suite.factories.Invitation.Create(suite.org.ID, suite.role.ID, "New.Hire@Example.COM")

	err := suite.repo.Create(invitation)
	suite.NoError(err)

	stored, err := suite.repo.GetByID(invitation.ID)
	suite.NoError(err)
	suite.Equal("new.hire@example.com", stored.Email)
}

// TestCreateDuplicateActive tests the partial unique index on live invitations
func (suite *InvitationRepositoryTestSuite) TestCreateDuplicateActive() {
	first := suite.factories.Invitation.Create(suite.org.ID, suite.role.ID, "hire@example.com")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Invitation.Create(suite.org.ID, suite.role.ID, "hire@example.com")
	err := suite.repo.Create(second)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestCreateRetiresExpired tests that an expired invitation does not block a
// fresh one for the same email
func (suite *InvitationRepositoryTestSuite) TestCreateRetiresExpired() {
	expired := suite.factories.Invitation.Expired(suite.org.ID, suite.role.ID, "hire@example.com")
	suite.NoError(suite.baseTestSuite.DB.Create(expired).Error)

	fresh := suite.factories.Invitation.Create(suite.org.ID, suite.role.ID, "hire@example.com")
	err := suite.repo.Create(fresh)
	suite.NoError(err)

	retired, err := suite.repo.GetByID(expired.ID)
	suite.NoError(err)
	suite.False(retired.IsActive)
}

// TestCreateSameEmailDifferentOrgs tests that the uniqueness is scoped per organization
func (suite *InvitationRepositoryTestSuite) TestCreateSameEmailDifferentOrgs() {
	otherOrg := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherOrg).Error)
	otherRole := suite.factories.Role.Create(otherOrg.ID, models.RoleEmployee)
	suite.NoError(suite.baseTestSuite.DB.Create(otherRole).Error)

	suite.NoError(suite.repo.Create(suite.factories.Invitation.Create(suite.org.ID, suite.role.ID, "hire@example.com")))
	suite.NoError(suite.repo.Create(suite.factories.Invitation.Create(otherOrg.ID, otherRole.ID, "hire@example.com")))
}

// TestGetActiveByOrgAndEmail tests the live invitation lookup
func (suite *InvitationRepositoryTestSuite) TestGetActiveByOrgAndEmail() {
	invitation := suite.factories.Invitation.Create(suite.org.ID, suite.role.ID, "hire@example.com")
	suite.NoError(suite.repo.Create(invitation))

	found, err := suite.repo.GetActiveByOrgAndEmail(suite.org.ID, "Hire@Example.com", time.Now())

	suite.NoError(err)
	suite.Equal(invitation.ID, found.ID)
}

// TestGetActiveByOrgAndEmailSkipsExpired tests that expired invitations are invisible
func (suite *InvitationRepositoryTestSuite) TestGetActiveByOrgAndEmailSkipsExpired() {
	expired := suite.factories.Invitation.Expired(suite.org.ID, suite.role.ID, "hire@example.com")
	suite.NoError(suite.baseTestSuite.DB.Create(expired).Error)

	_, err := suite.repo.GetActiveByOrgAndEmail(suite.org.ID, "hire@example.com", time.Now())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAcceptWithMembership tests accepting an invitation and creating the
// membership in one transaction
func (suite *InvitationRepositoryTestSuite) TestAcceptWithMembership() {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	invitation := suite.factories.Invitation.Create(suite.org.ID, suite.role.ID, user.Email)
	suite.NoError(suite.repo.Create(invitation))

	membership := suite.factories.Membership.Create(user.ID, suite.org.ID, suite.role.ID)
	err := suite.repo.AcceptWithMembership(invitation.ID, membership)
	suite.NoError(err)

	accepted, err := suite.repo.GetByID(invitation.ID)
	suite.NoError(err)
	suite.Equal(models.InvitationStatusAccept, accepted.Status)

	stored, err := NewMembershipRepository(suite.baseTestSuite.DB).GetActiveByUserAndOrg(user.ID, suite.org.ID)
	suite.NoError(err)
	suite.Equal(membership.ID, stored.ID)
}

// TestInvitationRepositoryTestSuite runs the test suite
func TestInvitationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationRepositoryTestSuite))
}
