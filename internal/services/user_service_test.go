package services_test

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/nerdeck/internal/models"
	"github.com/vytor/nerdeck/internal/services"
	"github.com/vytor/nerdeck/internal/testutil/mocks"
)

func TestCreateUser_IssuesUUIDToken(t *testing.T) {
	users := new(mocks.MockUserRepository)
	svc := services.NewUserService(users)

	users.On("GetByUsername", mock.Anything, "ana").Return(nil, nil)
	users.On("Create", mock.Anything, "ana", mock.MatchedBy(func(token string) bool {
		_, err := uuid.Parse(token)
		return err == nil
	})).Return(&models.User{ID: 1, Username: "ana", APIToken: "t"}, nil)

	user, err := svc.CreateUser(context.Background(), " ana ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	users.AssertExpectations(t)
}

func TestCreateUser_Rejects(t *testing.T) {
	users := new(mocks.MockUserRepository)
	svc := services.NewUserService(users)
	users.On("GetByUsername", mock.Anything, "ana").Return(&models.User{ID: 1, Username: "ana"}, nil)

	_, err := svc.CreateUser(context.Background(), "")
	requireAppError(t, err, http.StatusBadRequest)

	_, err = svc.CreateUser(context.Background(), "ana")
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.Message, "already taken")
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticate(t *testing.T) {
	users := new(mocks.MockUserRepository)
	svc := services.NewUserService(users)
	ana := &models.User{ID: 1, Username: "ana", APIToken: "secret"}
	users.On("GetByToken", mock.Anything, "secret").Return(ana, nil)
	users.On("GetByToken", mock.Anything, "wrong").Return(nil, nil)
	users.On("GetByToken", mock.Anything, "broken").Return(nil, stderrors.New("disk"))

	user, err := svc.Authenticate(context.Background(), "secret")
	require.NoError(t, err)
	assert.Same(t, ana, user)

	_, err = svc.Authenticate(context.Background(), "wrong")
	requireAppError(t, err, http.StatusUnauthorized)

	_, err = svc.Authenticate(context.Background(), "  ")
	requireAppError(t, err, http.StatusUnauthorized)

	_, err = svc.Authenticate(context.Background(), "broken")
	requireAppError(t, err, http.StatusInternalServerError)
}

func TestGetByUsername_NotFound(t *testing.T) {
	users := new(mocks.MockUserRepository)
	svc := services.NewUserService(users)
	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.GetByUsername(context.Background(), "ghost")
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "user not found: ghost", appErr.Message)
}
