package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/database"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/database/repository"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/telemetry"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/test"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/test/factory"
)

type TodoRepositoryTestSuite struct {
	suite.Suite
	db       *database.DB
	repo     port.TodoRepository
	userRepo port.UserRepository
	owner    domain.User
}

func (s *TodoRepositoryTestSuite) SetupTest() {
	s.db = test.InitTestDB()
	probe := telemetry.NewNoOpProbe()

	s.repo = repository.NewTodoRepository(s.db, probe)
	s.userRepo = repository.NewUserRepository(s.db, probe)

	owner, err := s.userRepo.Create(context.Background(), factory.NewUser(nil))
	assert.NoError(s.T(), err)

	s.owner = owner
}

func TestTodoRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoRepositoryTestSuite))
}

func (s *TodoRepositoryTestSuite) newTodo(overrides ...map[string]any) domain.Todo {
	data := map[string]any{"CreatedBy": s.owner.ID}

	for _, override := range overrides {
		for key, value := range override {
			data[key] = value
		}
	}

	return factory.NewTodo(data)
}

func (s *TodoRepositoryTestSuite) TestRepository_CreateTodo_Success() {
	todo, err := s.repo.Create(context.Background(), s.newTodo(map[string]any{
		"Title": "Write report",
		"Body":  "Quarterly numbers",
	}))

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Write report", todo.Title)
	assert.Equal(s.T(), "Quarterly numbers", todo.Body)
	assert.Equal(s.T(), s.owner.ID, todo.CreatedBy)
}

func (s *TodoRepositoryTestSuite) TestRepository_GetAllByOwner_ScopedToOwner() {
	ctx := context.Background()

	other, err := s.userRepo.Create(ctx, factory.NewUser(nil))
	assert.NoError(s.T(), err)

	_, err = s.repo.Create(ctx, s.newTodo(map[string]any{"Title": "Mine"}))
	assert.NoError(s.T(), err)

	_, err = s.repo.Create(ctx, s.newTodo(map[string]any{"Title": "Theirs", "CreatedBy": other.ID}))
	assert.NoError(s.T(), err)

	todos, err := s.repo.GetAllByOwner(ctx, s.owner.ID.String())

	assert.NoError(s.T(), err)
	Expect(todos).To(HaveLen(1))
	Expect(todos[0].Title).To(Equal("Mine"))
}

func (s *TodoRepositoryTestSuite) TestRepository_GetAllByOwner_Empty() {
	todos, err := s.repo.GetAllByOwner(context.Background(), s.owner.ID.String())

	assert.NoError(s.T(), err)
	Expect(todos).To(BeEmpty())
}

func (s *TodoRepositoryTestSuite) TestRepository_GetByID_NotFound() {
	_, err := s.repo.GetByID(context.Background(), uuid.NewString())

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestRepository_Update_Success() {
	ctx := context.Background()

	todo, err := s.repo.Create(ctx, s.newTodo(nil))
	assert.NoError(s.T(), err)

	todo.Title = "Renamed"

	updated, err := s.repo.Update(ctx, todo)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Renamed", updated.Title)
	assert.Equal(s.T(), todo.Body, updated.Body)
}

func (s *TodoRepositoryTestSuite) TestRepository_Update_NotFound() {
	_, err := s.repo.Update(context.Background(), s.newTodo(map[string]any{"ID": uuid.New()}))

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestRepository_DeleteByID_Success() {
	ctx := context.Background()

	todo, err := s.repo.Create(ctx, s.newTodo(nil))
	assert.NoError(s.T(), err)

	err = s.repo.DeleteByID(ctx, todo.ID.String())
	assert.NoError(s.T(), err)

	_, err = s.repo.GetByID(ctx, todo.ID.String())
	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestRepository_DeleteByID_NotFound() {
	err := s.repo.DeleteByID(context.Background(), uuid.NewString())

	Expect(err).To(MatchError(domain.ErrNotFound))
}
