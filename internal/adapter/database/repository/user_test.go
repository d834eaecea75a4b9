package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/database/repository"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/telemetry"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/test"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/test/factory"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	repo port.UserRepository
}

func (s *UserRepositoryTestSuite) SetupTest() {
	db := test.InitTestDB()
	probe := telemetry.NewNoOpProbe()

	s.repo = repository.NewUserRepository(db, probe)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestRepository_CreateUser_Success() {
	user, err := s.repo.Create(context.Background(), factory.NewUser(map[string]any{
		"Email":     "test@example.com",
		"Firstname": "Test",
		"Lastname":  "User",
	}))

	assert.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, user.ID)
	assert.Equal(s.T(), "test@example.com", user.Email)
	assert.Equal(s.T(), "Test", user.Firstname)
	assert.Equal(s.T(), "User", user.Lastname)
}

func (s *UserRepositoryTestSuite) TestRepository_CreateUser_DuplicateEmail() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, factory.NewUser(map[string]any{"Email": "dup@example.com"}))
	assert.NoError(s.T(), err)

	_, err = s.repo.Create(ctx, factory.NewUser(map[string]any{"Email": "dup@example.com"}))
	assert.Error(s.T(), err)
}

func (s *UserRepositoryTestSuite) TestRepository_GetByEmail_Success() {
	ctx := context.Background()

	created, err := s.repo.Create(ctx, factory.NewUser(map[string]any{"Email": "findme@example.com"}))
	assert.NoError(s.T(), err)

	found, err := s.repo.GetByEmail(ctx, "findme@example.com")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, found.ID)
	assert.Equal(s.T(), created.EncryptedPassword, found.EncryptedPassword)
}

func (s *UserRepositoryTestSuite) TestRepository_GetByEmail_NotFound() {
	_, err := s.repo.GetByEmail(context.Background(), "ghost@example.com")

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *UserRepositoryTestSuite) TestRepository_GetByID_NotFound() {
	_, err := s.repo.GetByID(context.Background(), uuid.NewString())

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *UserRepositoryTestSuite) TestRepository_Update_StoresToken() {
	ctx := context.Background()

	user, err := s.repo.Create(ctx, factory.NewUser(nil))
	assert.NoError(s.T(), err)

	user.Token = "session-token"

	updated, err := s.repo.Update(ctx, user)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "session-token", updated.Token)

	byToken, err := s.repo.GetByToken(ctx, "session-token")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), user.ID, byToken.ID)
}

func (s *UserRepositoryTestSuite) TestRepository_GetByToken_EmptyToken() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, factory.NewUser(nil))
	assert.NoError(s.T(), err)

	// Users without a session must never match an empty lookup.
	_, err = s.repo.GetByToken(ctx, "")

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *UserRepositoryTestSuite) TestRepository_Update_NotFound() {
	_, err := s.repo.Update(context.Background(), factory.NewUser(nil))

	Expect(err).To(MatchError(domain.ErrNotFound))
}
