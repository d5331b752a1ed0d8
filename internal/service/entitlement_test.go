package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"
	apperrors "github.com/teamEPYC/leave-management-app-sub000/internal/errors"
	"github.com/teamEPYC/leave-management-app-sub000/internal/mocks"
	"github.com/teamEPYC/leave-management-app-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// EntitlementServiceTestSuite defines the test suite for EntitlementService
type EntitlementServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockBalanceRepo    *mocks.MockLeaveBalanceRepositoryInterface
	mockLeaveTypeRepo  *mocks.MockLeaveTypeRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockGroupRepo      *mocks.MockGroupRepositoryInterface
	mockRoleRepo       *mocks.MockRoleRepositoryInterface
	entitlementService *service.EntitlementService

	orgID       uuid.UUID
	periodStart time.Time
	periodEnd   time.Time
}

// SetupTest sets up the test suite
func (suite *EntitlementServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBalanceRepo = mocks.NewMockLeaveBalanceRepositoryInterface(suite.ctrl)
	suite.mockLeaveTypeRepo = mocks.NewMockLeaveTypeRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockGroupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.mockRoleRepo = mocks.NewMockRoleRepositoryInterface(suite.ctrl)

	roleService := service.NewRoleService(suite.mockMembershipRepo, suite.mockRoleRepo, nil)
	suite.entitlementService = service.NewEntitlementService(
		suite.mockBalanceRepo,
		suite.mockLeaveTypeRepo,
		suite.mockMembershipRepo,
		suite.mockGroupRepo,
		roleService,
	)

	suite.orgID = uuid.New()
	suite.periodStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.periodEnd = time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
}

// TearDownTest cleans up after each test
func (suite *EntitlementServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EntitlementServiceTestSuite) limitedLeaveType(limitType models.LimitType, days float64) *models.LeaveType {
	return &models.LeaveType{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		OrganizationID:    suite.orgID,
		Name:              "Vacation",
		EmployeeType:      models.EmployeeTypeFullTime,
		IsLimited:         true,
		LimitType:         &limitType,
		LimitDays:         &days,
		AppliesToEveryone: true,
		IsActive:          true,
	}
}

func (suite *EntitlementServiceTestSuite) unlimitedLeaveType() *models.LeaveType {
	return &models.LeaveType{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		OrganizationID:    suite.orgID,
		Name:              "Sick Leave",
		EmployeeType:      models.EmployeeTypeFullTime,
		IsLimited:         false,
		AppliesToEveryone: true,
		IsActive:          true,
	}
}

func fullTimeMembership(userID, orgID uuid.UUID) models.Membership {
	return models.Membership{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		UserID:         userID,
		OrganizationID: orgID,
		EmployeeType:   models.EmployeeTypeFullTime,
		IsActive:       true,
	}
}

// TestCalculateLimitedQuarterly verifies that a quarterly limit of 40 days
// yields a 10-day allocation per user per period, plus any active adjustments.
func (suite *EntitlementServiceTestSuite) TestCalculateLimitedQuarterly() {
	leaveType := suite.limitedLeaveType(models.LimitTypeQuarter, 40)
	plainUser := uuid.New()
	adjustedUser := uuid.New()

	suite.mockLeaveTypeRepo.EXPECT().GetByID(leaveType.ID).Return(leaveType, nil)
	suite.mockMembershipRepo.EXPECT().
		GetActiveByOrganization(suite.orgID).
		Return([]models.Membership{
			fullTimeMembership(plainUser, suite.orgID),
			fullTimeMembership(adjustedUser, suite.orgID),
		}, nil)
	suite.mockBalanceRepo.EXPECT().SumActiveAdjustments(plainUser, leaveType.ID).Return(0.0, nil)
	suite.mockBalanceRepo.EXPECT().SumActiveAdjustments(adjustedUser, leaveType.ID).Return(5.0, nil)

	allocatedByUser := make(map[uuid.UUID]float64)
	suite.mockBalanceRepo.EXPECT().
		UpsertAllocation(gomock.Any()).
		DoAndReturn(func(balance *models.LeaveBalance) error {
			assert.Equal(suite.T(), leaveType.ID, balance.LeaveTypeID)
			assert.Equal(suite.T(), suite.periodStart, balance.PeriodStart)
			assert.Equal(suite.T(), suite.periodEnd, balance.PeriodEnd)
			require.NotNil(suite.T(), balance.AllocatedDays)
			allocatedByUser[balance.UserID] = *balance.AllocatedDays
			return nil
		}).
		Times(2)

	summary, err := suite.entitlementService.Calculate(suite.orgID, leaveType.ID, suite.periodStart, suite.periodEnd)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, summary.EligibleUsers)
	assert.Equal(suite.T(), 2, summary.Updated)
	assert.Empty(suite.T(), summary.Failures)
	assert.Equal(suite.T(), 10.0, allocatedByUser[plainUser])
	assert.Equal(suite.T(), 15.0, allocatedByUser[adjustedUser])
}

// TestCalculateUnlimitedAllocatesNil verifies that unlimited leave types
// produce nil allocations without consulting adjustments.
func (suite *EntitlementServiceTestSuite) TestCalculateUnlimitedAllocatesNil() {
	leaveType := suite.unlimitedLeaveType()
	userID := uuid.New()

	suite.mockLeaveTypeRepo.EXPECT().GetByID(leaveType.ID).Return(leaveType, nil)
	suite.mockMembershipRepo.EXPECT().
		GetActiveByOrganization(suite.orgID).
		Return([]models.Membership{fullTimeMembership(userID, suite.orgID)}, nil)
	suite.mockBalanceRepo.EXPECT().
		UpsertAllocation(gomock.Any()).
		DoAndReturn(func(balance *models.LeaveBalance) error {
			assert.Nil(suite.T(), balance.AllocatedDays)
			return nil
		})

	summary, err := suite.entitlementService.Calculate(suite.orgID, leaveType.ID, suite.periodStart, suite.periodEnd)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), summary.Allocations, 1)
	assert.Nil(suite.T(), summary.Allocations[0].AllocatedDays)
}

// TestCalculateRejectsInvalidPeriod verifies the period bounds check fires
// before any repository access.
func (suite *EntitlementServiceTestSuite) TestCalculateRejectsInvalidPeriod() {
	summary, err := suite.entitlementService.Calculate(suite.orgID, uuid.New(), suite.periodEnd, suite.periodStart)

	require.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.CodeInvalidRequest, apperrors.CodeOf(err))
	assert.Nil(suite.T(), summary)
}

// TestCalculateLeaveTypeNotFound verifies that a missing leave type maps to
// the domain not-found error.
func (suite *EntitlementServiceTestSuite) TestCalculateLeaveTypeNotFound() {
	leaveTypeID := uuid.New()
	suite.mockLeaveTypeRepo.EXPECT().GetByID(leaveTypeID).Return(nil, gorm.ErrRecordNotFound)

	summary, err := suite.entitlementService.Calculate(suite.orgID, leaveTypeID, suite.periodStart, suite.periodEnd)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaveTypeNotFound)
	assert.Nil(suite.T(), summary)
}

// TestCalculateRejectsForeignLeaveType verifies the leave type must belong to
// the organization named in the request.
func (suite *EntitlementServiceTestSuite) TestCalculateRejectsForeignLeaveType() {
	leaveType := suite.limitedLeaveType(models.LimitTypeYear, 24)
	leaveType.OrganizationID = uuid.New()
	suite.mockLeaveTypeRepo.EXPECT().GetByID(leaveType.ID).Return(leaveType, nil)

	summary, err := suite.entitlementService.Calculate(suite.orgID, leaveType.ID, suite.periodStart, suite.periodEnd)

	require.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.CodeInvalidRequest, apperrors.CodeOf(err))
	assert.Nil(suite.T(), summary)
}

// TestCalculateRejectsInactiveLeaveType verifies deactivated leave types are
// treated as missing.
func (suite *EntitlementServiceTestSuite) TestCalculateRejectsInactiveLeaveType() {
	leaveType := suite.limitedLeaveType(models.LimitTypeYear, 24)
	leaveType.IsActive = false
	suite.mockLeaveTypeRepo.EXPECT().GetByID(leaveType.ID).Return(leaveType, nil)

	summary, err := suite.entitlementService.Calculate(suite.orgID, leaveType.ID, suite.periodStart, suite.periodEnd)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaveTypeNotFound)
	assert.Nil(suite.T(), summary)
}

// TestCalculateFiltersByEmployeeType verifies that members whose employee
// type differs from the leave type's get no balance row.
func (suite *EntitlementServiceTestSuite) TestCalculateFiltersByEmployeeType() {
	leaveType := suite.limitedLeaveType(models.LimitTypeYear, 24)
	fullTimer := uuid.New()
	partTimer := fullTimeMembership(uuid.New(), suite.orgID)
	partTimer.EmployeeType = models.EmployeeTypePartTime

	suite.mockLeaveTypeRepo.EXPECT().GetByID(leaveType.ID).Return(leaveType, nil)
	suite.mockMembershipRepo.EXPECT().
		GetActiveByOrganization(suite.orgID).
		Return([]models.Membership{
			fullTimeMembership(fullTimer, suite.orgID),
			partTimer,
		}, nil)
	suite.mockBalanceRepo.EXPECT().SumActiveAdjustments(fullTimer, leaveType.ID).Return(0.0, nil)
	suite.mockBalanceRepo.EXPECT().
		UpsertAllocation(gomock.Any()).
		DoAndReturn(func(balance *models.LeaveBalance) error {
			assert.Equal(suite.T(), fullTimer, balance.UserID)
			return nil
		})

	summary, err := suite.entitlementService.Calculate(suite.orgID, leaveType.ID, suite.periodStart, suite.periodEnd)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, summary.EligibleUsers)
	assert.Equal(suite.T(), 1, summary.Updated)
}

// TestCalculateGroupScoped verifies that a group-scoped leave type reaches
// only the union of its groups' members, each user at most once.
func (suite *EntitlementServiceTestSuite) TestCalculateGroupScoped() {
	leaveType := suite.limitedLeaveType(models.LimitTypeMonth, 24)
	leaveType.AppliesToEveryone = false
	groupA := uuid.New()
	groupB := uuid.New()
	inBoth := uuid.New()
	inOne := uuid.New()
	notInAnyGroup := uuid.New()

	suite.mockLeaveTypeRepo.EXPECT().GetByID(leaveType.ID).Return(leaveType, nil)
	suite.mockMembershipRepo.EXPECT().
		GetActiveByOrganization(suite.orgID).
		Return([]models.Membership{
			fullTimeMembership(inBoth, suite.orgID),
			fullTimeMembership(inOne, suite.orgID),
			fullTimeMembership(notInAnyGroup, suite.orgID),
		}, nil)
	suite.mockLeaveTypeRepo.EXPECT().
		GetActiveGroupIDs(leaveType.ID).
		Return([]uuid.UUID{groupA, groupB}, nil)
	suite.mockGroupRepo.EXPECT().
		GetActiveMembershipsOfGroups([]uuid.UUID{groupA, groupB}).
		Return([]models.GroupMembership{
			{GroupID: groupA, UserID: inBoth},
			{GroupID: groupB, UserID: inBoth},
			{GroupID: groupA, UserID: inOne},
		}, nil)
	suite.mockBalanceRepo.EXPECT().SumActiveAdjustments(inBoth, leaveType.ID).Return(0.0, nil)
	suite.mockBalanceRepo.EXPECT().SumActiveAdjustments(inOne, leaveType.ID).Return(0.0, nil)

	upserted := make(map[uuid.UUID]int)
	suite.mockBalanceRepo.EXPECT().
		UpsertAllocation(gomock.Any()).
		DoAndReturn(func(balance *models.LeaveBalance) error {
			upserted[balance.UserID]++
			return nil
		}).
		Times(2)

	summary, err := suite.entitlementService.Calculate(suite.orgID, leaveType.ID, suite.periodStart, suite.periodEnd)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, summary.EligibleUsers)
	assert.Equal(suite.T(), 1, upserted[inBoth])
	assert.Equal(suite.T(), 1, upserted[inOne])
	assert.Zero(suite.T(), upserted[notInAnyGroup])
}

// TestCalculateAggregatesFailures verifies that one user's upsert failure
// does not stop the rest of the batch.
func (suite *EntitlementServiceTestSuite) TestCalculateAggregatesFailures() {
	leaveType := suite.limitedLeaveType(models.LimitTypeQuarter, 40)
	first := uuid.New()
	second := uuid.New()

	suite.mockLeaveTypeRepo.EXPECT().GetByID(leaveType.ID).Return(leaveType, nil)
	suite.mockMembershipRepo.EXPECT().
		GetActiveByOrganization(suite.orgID).
		Return([]models.Membership{
			fullTimeMembership(first, suite.orgID),
			fullTimeMembership(second, suite.orgID),
		}, nil)
	suite.mockBalanceRepo.EXPECT().SumActiveAdjustments(gomock.Any(), leaveType.ID).Return(0.0, nil).Times(2)

	var failed uuid.UUID
	calls := 0
	suite.mockBalanceRepo.EXPECT().
		UpsertAllocation(gomock.Any()).
		DoAndReturn(func(balance *models.LeaveBalance) error {
			calls++
			if calls == 1 {
				failed = balance.UserID
				return errors.New("connection reset by peer")
			}
			return nil
		}).
		Times(2)

	summary, err := suite.entitlementService.Calculate(suite.orgID, leaveType.ID, suite.periodStart, suite.periodEnd)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, summary.EligibleUsers)
	assert.Equal(suite.T(), 1, summary.Updated)
	require.Len(suite.T(), summary.Failures, 1)
	assert.Equal(suite.T(), failed, summary.Failures[0].UserID)
	assert.Contains(suite.T(), summary.Failures[0].Error, "connection reset")
	require.Len(suite.T(), summary.Allocations, 1)
	assert.NotEqual(suite.T(), failed, summary.Allocations[0].UserID)
}

// TestAddAdjustment verifies an admin can grant extra days against a balance.
func (suite *EntitlementServiceTestSuite) TestAddAdjustment() {
	caller := uuid.New()
	leaveType := suite.limitedLeaveType(models.LimitTypeYear, 24)
	balance := &models.LeaveBalance{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		UserID:      uuid.New(),
		LeaveTypeID: leaveType.ID,
	}

	suite.mockBalanceRepo.EXPECT().GetByID(balance.ID).Return(balance, nil)
	suite.mockLeaveTypeRepo.EXPECT().GetByID(leaveType.ID).Return(leaveType, nil)
	suite.mockMembershipRepo.EXPECT().
		GetActiveByUserAndOrg(caller, suite.orgID).
		Return(membershipWithRole(caller, suite.orgID, models.RoleAdmin, false), nil)
	suite.mockBalanceRepo.EXPECT().
		CreateAdjustment(gomock.Any()).
		DoAndReturn(func(adjustment *models.LeaveBalanceAdjustment) error {
			assert.Equal(suite.T(), balance.ID, adjustment.LeaveBalanceID)
			assert.Equal(suite.T(), 3.0, adjustment.AddedDays)
			assert.True(suite.T(), adjustment.IsActive)
			return nil
		})

	err := suite.entitlementService.AddAdjustment(caller, balance.ID, &service.AddAdjustmentRequest{AddedDays: 3})

	assert.NoError(suite.T(), err)
}

// TestAddAdjustmentRejectsZeroDays verifies a zero grant is refused up front.
func (suite *EntitlementServiceTestSuite) TestAddAdjustmentRejectsZeroDays() {
	err := suite.entitlementService.AddAdjustment(uuid.New(), uuid.New(), &service.AddAdjustmentRequest{AddedDays: 0})

	require.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.CodeInvalidRequest, apperrors.CodeOf(err))
}

// TestAddAdjustmentRequiresAdmin verifies plain employees cannot grant days.
func (suite *EntitlementServiceTestSuite) TestAddAdjustmentRequiresAdmin() {
	caller := uuid.New()
	leaveType := suite.limitedLeaveType(models.LimitTypeYear, 24)
	balance := &models.LeaveBalance{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		UserID:      uuid.New(),
		LeaveTypeID: leaveType.ID,
	}

	suite.mockBalanceRepo.EXPECT().GetByID(balance.ID).Return(balance, nil)
	suite.mockLeaveTypeRepo.EXPECT().GetByID(leaveType.ID).Return(leaveType, nil)
	suite.mockMembershipRepo.EXPECT().
		GetActiveByUserAndOrg(caller, suite.orgID).
		Return(membershipWithRole(caller, suite.orgID, models.RoleEmployee, false), nil)

	err := suite.entitlementService.AddAdjustment(caller, balance.ID, &service.AddAdjustmentRequest{AddedDays: 2})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOrgAdmin)
}

// TestAddAdjustmentBalanceNotFound verifies a missing balance maps to the
// domain not-found error.
func (suite *EntitlementServiceTestSuite) TestAddAdjustmentBalanceNotFound() {
	balanceID := uuid.New()
	suite.mockBalanceRepo.EXPECT().GetByID(balanceID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.entitlementService.AddAdjustment(uuid.New(), balanceID, &service.AddAdjustmentRequest{AddedDays: 2})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaveBalanceNotFound)
}

// TestEntitlementServiceTestSuite runs the test suite
func TestEntitlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntitlementServiceTestSuite))
}
