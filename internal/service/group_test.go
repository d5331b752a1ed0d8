package service_test

import (
	"testing"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"
	apperrors "github.com/teamEPYC/leave-management-app-sub000/internal/errors"
	"github.com/teamEPYC/leave-management-app-sub000/internal/mocks"
	"github.com/teamEPYC/leave-management-app-sub000/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// GroupServiceTestSuite defines the test suite for GroupService
type GroupServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockGroupRepo      *mocks.MockGroupRepositoryInterface
	mockOrgRepo        *mocks.MockOrganizationRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockRoleRepo       *mocks.MockRoleRepositoryInterface
	groupService       *service.GroupService

	orgID    uuid.UUID
	callerID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *GroupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGroupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockRoleRepo = mocks.NewMockRoleRepositoryInterface(suite.ctrl)

	roleService := service.NewRoleService(suite.mockMembershipRepo, suite.mockRoleRepo, nil)
	suite.groupService = service.NewGroupService(
		suite.mockGroupRepo,
		suite.mockOrgRepo,
		suite.mockMembershipRepo,
		roleService,
		validator.New(),
	)

	suite.orgID = uuid.New()
	suite.callerID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *GroupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GroupServiceTestSuite) expectActiveOrg() {
	suite.mockOrgRepo.EXPECT().
		GetActiveByID(suite.orgID).
		Return(&models.Organization{
			BaseModel: models.BaseModel{ID: suite.orgID},
			Name:      "Acme",
			Domain:    "acme.example.com",
			IsActive:  true,
		}, nil).
		Times(1)
}

func (suite *GroupServiceTestSuite) expectCallerIsAdmin() {
	suite.mockMembershipRepo.EXPECT().
		GetActiveByUserAndOrg(suite.callerID, suite.orgID).
		Return(membershipWithRole(suite.callerID, suite.orgID, models.RoleAdmin, false), nil).
		Times(1)
}

// TestCreateGroup tests creating a group with managers and members
func (suite *GroupServiceTestSuite) TestCreateGroup() {
	manager := uuid.New()
	member := uuid.New()

	suite.expectActiveOrg()
	suite.expectCallerIsAdmin()
	suite.mockMembershipRepo.EXPECT().
		FilterActiveUserIDs(suite.orgID, gomock.Any()).
		Return([]uuid.UUID{manager, member}, nil).
		Times(1)
	suite.mockGroupRepo.EXPECT().
		GetActiveByName(suite.orgID, "Engineering").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockGroupRepo.EXPECT().
		CreateWithMemberships(gomock.Any(), gomock.Any()).
		DoAndReturn(func(group *models.Group, memberships []models.GroupMembership) error {
			group.ID = uuid.New()
			suite.Len(memberships, 2)
			byUser := map[uuid.UUID]bool{}
			for _, m := range memberships {
				byUser[m.UserID] = m.IsApprovalManager
			}
			suite.True(byUser[manager])
			suite.False(byUser[member])
			return nil
		}).
		Times(1)

	resp, err := suite.groupService.Create(suite.callerID, &service.CreateGroupRequest{
		OrganizationID:     suite.orgID,
		Name:               "Engineering",
		ApprovalManagerIDs: []uuid.UUID{manager},
		MemberIDs:          []uuid.UUID{member},
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), "Engineering", resp.Name)
	assert.Len(suite.T(), resp.Members, 2)
}

// TestCreateGroupRejectsOutsiders tests that users without membership in the
// organization fail the whole call before any write
func (suite *GroupServiceTestSuite) TestCreateGroupRejectsOutsiders() {
	insider := uuid.New()
	outsider := uuid.New()

	suite.expectActiveOrg()
	suite.expectCallerIsAdmin()
	suite.mockMembershipRepo.EXPECT().
		FilterActiveUserIDs(suite.orgID, gomock.Any()).
		Return([]uuid.UUID{insider}, nil).
		Times(1)

	resp, err := suite.groupService.Create(suite.callerID, &service.CreateGroupRequest{
		OrganizationID: suite.orgID,
		Name:           "Engineering",
		MemberIDs:      []uuid.UUID{insider, outsider},
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Equal(suite.T(), apperrors.CodeInvalidUser, apperrors.CodeOf(err))

	var invalidUser *apperrors.InvalidUserError
	assert.ErrorAs(suite.T(), err, &invalidUser)
	assert.Equal(suite.T(), []uuid.UUID{outsider}, invalidUser.UserIDs)
}

// TestCreateGroupDuplicateName tests the name collision path
func (suite *GroupServiceTestSuite) TestCreateGroupDuplicateName() {
	suite.expectActiveOrg()
	suite.expectCallerIsAdmin()
	suite.mockGroupRepo.EXPECT().
		GetActiveByName(suite.orgID, "Engineering").
		Return(&models.Group{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: suite.orgID,
			Name:           "Engineering",
			IsActive:       true,
		}, nil).
		Times(1)

	resp, err := suite.groupService.Create(suite.callerID, &service.CreateGroupRequest{
		OrganizationID: suite.orgID,
		Name:           "Engineering",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupExists)
	assert.Nil(suite.T(), resp)
	assert.Equal(suite.T(), apperrors.CodeAlreadyExists, apperrors.CodeOf(err))
}

// TestEditGroupReconciles tests that edit computes and applies the diff
func (suite *GroupServiceTestSuite) TestEditGroupReconciles() {
	groupID := uuid.New()
	stays := uuid.New()
	leaves := uuid.New()
	promoted := uuid.New()
	joins := uuid.New()

	group := &models.Group{
		BaseModel:      models.BaseModel{ID: groupID},
		OrganizationID: suite.orgID,
		Name:           "Engineering",
		IsActive:       true,
	}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil).Times(1)
	suite.expectCallerIsAdmin()
	suite.mockMembershipRepo.EXPECT().
		FilterActiveUserIDs(suite.orgID, gomock.Any()).
		Return([]uuid.UUID{stays, promoted, joins}, nil).
		Times(1)
	suite.mockGroupRepo.EXPECT().
		GetActiveMemberships(groupID).
		Return([]models.GroupMembership{
			{GroupID: groupID, UserID: stays, IsApprovalManager: false, IsActive: true},
			{GroupID: groupID, UserID: leaves, IsApprovalManager: false, IsActive: true},
			{GroupID: groupID, UserID: promoted, IsApprovalManager: false, IsActive: true},
		}, nil).
		Times(1)
	suite.mockGroupRepo.EXPECT().
		ApplyReconciliation(groupID, []uuid.UUID{leaves}, map[uuid.UUID]bool{promoted: true}, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ []uuid.UUID, _ map[uuid.UUID]bool, additions []models.GroupMembership) error {
			suite.Len(additions, 1)
			suite.Equal(joins, additions[0].UserID)
			suite.True(additions[0].IsApprovalManager)
			return nil
		}).
		Times(1)
	suite.mockGroupRepo.EXPECT().Update(groupID, gomock.Any()).Return(nil).Times(1)
	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil).Times(1)

	resp, err := suite.groupService.Edit(suite.callerID, groupID, &service.EditGroupRequest{
		Name:               "Engineering",
		ApprovalManagerIDs: []uuid.UUID{promoted, joins},
		MemberIDs:          []uuid.UUID{stays},
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

// TestEditGroupNoChanges tests that identical sets skip reconciliation
func (suite *GroupServiceTestSuite) TestEditGroupNoChanges() {
	groupID := uuid.New()
	member := uuid.New()

	group := &models.Group{
		BaseModel:      models.BaseModel{ID: groupID},
		OrganizationID: suite.orgID,
		Name:           "Engineering",
		IsActive:       true,
	}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil).Times(1)
	suite.expectCallerIsAdmin()
	suite.mockMembershipRepo.EXPECT().
		FilterActiveUserIDs(suite.orgID, gomock.Any()).
		Return([]uuid.UUID{member}, nil).
		Times(1)
	suite.mockGroupRepo.EXPECT().
		GetActiveMemberships(groupID).
		Return([]models.GroupMembership{
			{GroupID: groupID, UserID: member, IsApprovalManager: false, IsActive: true},
		}, nil).
		Times(1)
	// No ApplyReconciliation expectation: an empty diff must not hit the store
	suite.mockGroupRepo.EXPECT().Update(groupID, gomock.Any()).Return(nil).Times(1)
	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil).Times(1)

	resp, err := suite.groupService.Edit(suite.callerID, groupID, &service.EditGroupRequest{
		Name:      "Engineering",
		MemberIDs: []uuid.UUID{member},
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

// TestEditGroupRenameCollision tests renaming onto an existing active name
func (suite *GroupServiceTestSuite) TestEditGroupRenameCollision() {
	groupID := uuid.New()
	group := &models.Group{
		BaseModel:      models.BaseModel{ID: groupID},
		OrganizationID: suite.orgID,
		Name:           "Engineering",
		IsActive:       true,
	}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(group, nil).Times(1)
	suite.expectCallerIsAdmin()
	suite.mockGroupRepo.EXPECT().
		GetActiveByName(suite.orgID, "Design").
		Return(&models.Group{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: suite.orgID,
			Name:           "Design",
			IsActive:       true,
		}, nil).
		Times(1)

	resp, err := suite.groupService.Edit(suite.callerID, groupID, &service.EditGroupRequest{
		Name: "Design",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupExists)
	assert.Nil(suite.T(), resp)
}

// TestDeactivateGroupNotFound tests deactivating a missing group
func (suite *GroupServiceTestSuite) TestDeactivateGroupNotFound() {
	groupID := uuid.New()

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.groupService.Deactivate(suite.callerID, groupID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupNotFound)
	assert.Equal(suite.T(), apperrors.CodeNotFound, apperrors.CodeOf(err))
}

// TestGroupServiceTestSuite runs the test suite
func TestGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceTestSuite))
}
