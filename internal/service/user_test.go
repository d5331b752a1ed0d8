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
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockUserRepositoryInterface
	userService *service.UserService
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateUser tests creating a user with a lowercased email
func (suite *UserServiceTestSuite) TestCreateUser() {
	suite.mockRepo.EXPECT().
		GetByEmail("jane@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.Equal(suite.T(), "jane@example.com", user.Email)
			assert.True(suite.T(), user.IsActive)
			user.ID = uuid.New()
			return nil
		})

	resp, err := suite.userService.Create(&service.CreateUserRequest{
		Email: "Jane@Example.com",
		Name:  "Jane Doe",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jane@example.com", resp.Email)
	assert.NotEqual(suite.T(), uuid.Nil, resp.ID)
}

// TestCreateUserDuplicateEmail tests the existing-email rejection
func (suite *UserServiceTestSuite) TestCreateUserDuplicateEmail() {
	suite.mockRepo.EXPECT().
		GetByEmail("jane@example.com").
		Return(&models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "jane@example.com"}, nil)

	resp, err := suite.userService.Create(&service.CreateUserRequest{
		Email: "jane@example.com",
		Name:  "Jane Doe",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
	assert.Nil(suite.T(), resp)
}

// TestCreateUserLosesSignupRace tests that a duplicate-key failure on insert
// maps to the same already-exists error
func (suite *UserServiceTestSuite) TestCreateUserLosesSignupRace() {
	suite.mockRepo.EXPECT().
		GetByEmail("jane@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(gorm.ErrDuplicatedKey)

	resp, err := suite.userService.Create(&service.CreateUserRequest{
		Email: "jane@example.com",
		Name:  "Jane Doe",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
	assert.Nil(suite.T(), resp)
}

// TestCreateUserInvalidEmail tests request validation
func (suite *UserServiceTestSuite) TestCreateUserInvalidEmail() {
	resp, err := suite.userService.Create(&service.CreateUserRequest{
		Email: "not-an-email",
		Name:  "Jane Doe",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
}

// TestGetByIDNotFound tests the not-found mapping
func (suite *UserServiceTestSuite) TestGetByIDNotFound() {
	userID := uuid.New()
	suite.mockRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.userService.GetByID(userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
	assert.Nil(suite.T(), resp)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
