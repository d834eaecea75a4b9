package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"
)

type TodoHandlerSuite struct {
	suite.Suite
	env   *testEnv
	token string
}

func (s *TodoHandlerSuite) SetupTest() {
	s.env = newTestEnv(s.T())

	s.env.signup("owner@test.com", "12345678")
	s.token = s.env.login(s.T(), "owner@test.com", "12345678")
}

func TestTodoHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoHandlerSuite))
}

func (s *TodoHandlerSuite) TestCreateTodoSuccess() {
	rr := s.env.request("POST", "/api/todo", `{"title": "Walk the dog", "body": "Before 6pm"}`, s.token)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body := parseBody(rr)

	Expect(body["status"]).To(Equal("success"))
	Expect(body["message"]).To(Equal("Todo Item Added Successfully"))

	data := body["data"].(map[string]any)

	Expect(data["title"]).To(Equal("Walk the dog"))
	Expect(data["body"]).To(Equal("Before 6pm"))
	Expect(data["id"]).ToNot(BeEmpty())
}

func (s *TodoHandlerSuite) TestCreateTodoOwnerForcedToCaller() {
	owner, err := s.env.UserRepo.GetByEmail(context.Background(), "owner@test.com")
	Expect(err).ToNot(HaveOccurred())

	// created_by in the body must be ignored.
	rr := s.env.request("POST", "/api/todo",
		`{"title": "Sneaky", "body": "text", "created_by": "`+uuid.NewString()+`"}`, s.token)

	Expect(rr.Code).To(Equal(http.StatusOK))

	data := parseBody(rr)["data"].(map[string]any)

	Expect(data["created_by"]).To(Equal(owner.ID.String()))
}

func (s *TodoHandlerSuite) TestCreateTodoMissingTitle() {
	rr := s.env.request("POST", "/api/todo", `{"body": "no title"}`, s.token)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *TodoHandlerSuite) TestCreateTodoTitleTooLong() {
	longTitle := strings.Repeat("x", 51)

	rr := s.env.request("POST", "/api/todo", `{"title": "`+longTitle+`", "body": "text"}`, s.token)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *TodoHandlerSuite) TestListScopedToCaller() {
	s.env.request("POST", "/api/todo", `{"title": "Mine", "body": "text"}`, s.token)

	s.env.signup("other@test.com", "12345678")
	otherToken := s.env.login(s.T(), "other@test.com", "12345678")

	s.env.request("POST", "/api/todo", `{"title": "Theirs", "body": "text"}`, otherToken)

	rr := s.env.request("GET", "/api/todos", "", s.token)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body := parseBody(rr)

	Expect(body["message"]).To(Equal("Todo List Fetched Successfully"))

	data := body["data"].([]any)

	Expect(data).To(HaveLen(1))
	Expect(data[0].(map[string]any)["title"]).To(Equal("Mine"))
}

func (s *TodoHandlerSuite) TestGetTodoRoundTrip() {
	rr := s.env.request("POST", "/api/todo", `{"title": "Read book", "body": "Chapter 3"}`, s.token)

	todoID := parseBody(rr)["data"].(map[string]any)["id"].(string)

	rr = s.env.request("GET", "/api/todo/"+todoID, "", s.token)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body := parseBody(rr)

	Expect(body["message"]).To(Equal("Todo Info Fetched Successfully"))

	data := body["data"].(map[string]any)

	Expect(data["title"]).To(Equal("Read book"))
	Expect(data["body"]).To(Equal("Chapter 3"))
}

func (s *TodoHandlerSuite) TestGetTodoNotFoundIsSuccessEnvelope() {
	rr := s.env.request("GET", "/api/todo/"+uuid.NewString(), "", s.token)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body := parseBody(rr)

	Expect(body["status"]).To(Equal("success"))
	Expect(body["message"]).To(Equal("Todo Info Not Found"))
	Expect(body["data"]).To(BeNil())
}

func (s *TodoHandlerSuite) TestUpdateTodoPartial() {
	rr := s.env.request("POST", "/api/todo", `{"title": "Old title", "body": "Keep me"}`, s.token)

	todoID := parseBody(rr)["data"].(map[string]any)["id"].(string)

	rr = s.env.request("PUT", "/api/todo/"+todoID, `{"title": "New title"}`, s.token)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body := parseBody(rr)

	Expect(body["message"]).To(Equal("Todo Info Updated Successfully"))

	data := body["data"].(map[string]any)

	Expect(data["title"]).To(Equal("New title"))
	Expect(data["body"]).To(Equal("Keep me"))
}

func (s *TodoHandlerSuite) TestDeleteTodo() {
	rr := s.env.request("POST", "/api/todo", `{"title": "Ephemeral", "body": "text"}`, s.token)

	todoID := parseBody(rr)["data"].(map[string]any)["id"].(string)

	rr = s.env.request("DELETE", "/api/todo/"+todoID, "", s.token)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(parseBody(rr)["message"]).To(Equal("Todo Item Deleted Successfully"))

	rr = s.env.request("GET", "/api/todo/"+todoID, "", s.token)

	Expect(parseBody(rr)["message"]).To(Equal("Todo Info Not Found"))
}

func (s *TodoHandlerSuite) TestDeleteTodoMissing() {
	rr := s.env.request("DELETE", "/api/todo/"+uuid.NewString(), "", s.token)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(parseBody(rr)["message"]).To(Equal("Unable to delete Todo Item"))
}

// Any authenticated user can read, update and delete a todo by id. The id
// routes are not scoped to the owner.
func (s *TodoHandlerSuite) TestCrossUserAccessById() {
	rr := s.env.request("POST", "/api/todo", `{"title": "Owner todo", "body": "text"}`, s.token)

	todoID := parseBody(rr)["data"].(map[string]any)["id"].(string)

	s.env.signup("other@test.com", "12345678")
	otherToken := s.env.login(s.T(), "other@test.com", "12345678")

	rr = s.env.request("GET", "/api/todo/"+todoID, "", otherToken)
	Expect(parseBody(rr)["message"]).To(Equal("Todo Info Fetched Successfully"))

	rr = s.env.request("PUT", "/api/todo/"+todoID, `{"title": "Hijacked"}`, otherToken)
	Expect(parseBody(rr)["message"]).To(Equal("Todo Info Updated Successfully"))

	rr = s.env.request("DELETE", "/api/todo/"+todoID, "", otherToken)
	Expect(parseBody(rr)["message"]).To(Equal("Todo Item Deleted Successfully"))
}
