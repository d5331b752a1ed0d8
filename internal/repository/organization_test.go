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

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OrganizationRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

// TestCreateWithOwner tests that creating an organization seeds the fixed
// roles and the creator's owner membership
func (suite *OrganizationRepositoryTestSuite) TestCreateWithOwner() {
	creator := suite.createUser()
	org := suite.factories.Organization.Create()

	err := suite.repo.CreateWithOwner(org, creator.ID, models.EmployeeTypeFullTime)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)

	var roles []models.Role
	suite.NoError(suite.baseTestSuite.DB.Find(&roles, "organization_id = ?", org.ID).Error)
	suite.Len(roles, 3)

	names := make(map[models.RoleName]bool, len(roles))
	for _, role := range roles {
		names[role.Name] = true
	}
	suite.True(names[models.RoleOwner])
	suite.True(names[models.RoleAdmin])
	suite.True(names[models.RoleEmployee])

	membership, err := NewMembershipRepository(suite.baseTestSuite.DB).GetActiveByUserAndOrg(creator.ID, org.ID)
	suite.NoError(err)
	suite.True(membership.IsOwner)
	suite.Equal(models.RoleOwner, membership.Role.Name)
}

// TestCreateWithOwnerDuplicateDomain tests the unique index on domains
func (suite *OrganizationRepositoryTestSuite) TestCreateWithOwnerDuplicateDomain() {
	creator := suite.createUser()
	first := suite.factories.Organization.WithDomain("acme.example.com")
	suite.NoError(suite.repo.CreateWithOwner(first, creator.ID, models.EmployeeTypeFullTime))

	second := suite.factories.Organization.WithDomain("acme.example.com")
	err := suite.repo.CreateWithOwner(second, creator.ID, models.EmployeeTypeFullTime)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetActiveByID tests that deactivated organizations are not returned
func (suite *OrganizationRepositoryTestSuite) TestGetActiveByID() {
	creator := suite.createUser()
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.CreateWithOwner(org, creator.ID, models.EmployeeTypeFullTime))

	found, err := suite.repo.GetActiveByID(org.ID)
	suite.NoError(err)
	suite.Equal(org.ID, found.ID)

	suite.NoError(suite.repo.Deactivate(org.ID))

	_, err = suite.repo.GetActiveByID(org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeactivateCascadesMemberships tests that deactivation retires the
// organization's memberships with it
func (suite *OrganizationRepositoryTestSuite) TestDeactivateCascadesMemberships() {
	creator := suite.createUser()
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.CreateWithOwner(org, creator.ID, models.EmployeeTypeFullTime))

	suite.NoError(suite.repo.Deactivate(org.ID))

	_, err := NewMembershipRepository(suite.baseTestSuite.DB).GetActiveByUserAndOrg(creator.ID, org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
