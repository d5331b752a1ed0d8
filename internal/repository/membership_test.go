//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"
	"github.com/teamEPYC/leave-management-app-sub000/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	factories     *testutils.FactorySet

	org  *models.Organization
	role *models.Role
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.org).Error)

	suite.role = suite.factories.Role.Create(suite.org.ID, models.RoleEmployee)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.role).Error)
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MembershipRepositoryTestSuite) createMember() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	suite.NoError(suite.repo.Create(suite.factories.Membership.Create(user.ID, suite.org.ID, suite.role.ID)))
	return user
}

// TestCreateDuplicateActive tests the partial unique index on active memberships
func (suite *MembershipRepositoryTestSuite) TestCreateDuplicateActive() {
	user := suite.createMember()

	err := suite.repo.Create(suite.factories.Membership.Create(user.ID, suite.org.ID, suite.role.ID))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetActiveByUserAndOrgPreloadsRole tests the role preload used by the resolver
func (suite *MembershipRepositoryTestSuite) TestGetActiveByUserAndOrgPreloadsRole() {
	user := suite.createMember()

	membership, err := suite.repo.GetActiveByUserAndOrg(user.ID, suite.org.ID)

	suite.NoError(err)
	suite.Equal(models.RoleEmployee, membership.Role.Name)
}

// TestRejoinAfterDeactivation tests that a fresh membership can be created
// once the old one is retired
func (suite *MembershipRepositoryTestSuite) TestRejoinAfterDeactivation() {
	user := suite.createMember()

	membership, err := suite.repo.GetActiveByUserAndOrg(user.ID, suite.org.ID)
	suite.NoError(err)
	suite.NoError(suite.repo.Deactivate(membership.ID))

	err = suite.repo.Create(suite.factories.Membership.Create(user.ID, suite.org.ID, suite.role.ID))
	suite.NoError(err)
}

// TestFilterActiveUserIDs tests that only active members of the organization survive
func (suite *MembershipRepositoryTestSuite) TestFilterActiveUserIDs() {
	insider := suite.createMember()

	outsider := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(outsider).Error)

	retired := suite.createMember()
	membership, err := suite.repo.GetActiveByUserAndOrg(retired.ID, suite.org.ID)
	suite.NoError(err)
	suite.NoError(suite.repo.Deactivate(membership.ID))

	ids, err := suite.repo.FilterActiveUserIDs(suite.org.ID, []uuid.UUID{insider.ID, outsider.ID, retired.ID})

	suite.NoError(err)
	suite.Equal([]uuid.UUID{insider.ID}, ids)
}

// TestFilterActiveUserIDsEmptyInput tests the empty input shortcut
func (suite *MembershipRepositoryTestSuite) TestFilterActiveUserIDsEmptyInput() {
	ids, err := suite.repo.FilterActiveUserIDs(suite.org.ID, nil)

	suite.NoError(err)
	suite.Nil(ids)
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
