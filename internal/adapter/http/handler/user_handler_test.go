package handler_test

import (
	"context"
	"net/http"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"
)

type UserHandlerSuite struct {
	suite.Suite
	env   *testEnv
	token string
}

func (s *UserHandlerSuite) SetupTest() {
	s.env = newTestEnv(s.T())

	s.env.request("POST", "/api/signup", `{"email": "eu@test.com", "password": "12345678", "firstname": "Ana", "lastname": "Silva"}`, "")
	s.token = s.env.login(s.T(), "eu@test.com", "12345678")
}

func TestUserHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserHandlerSuite))
}

func (s *UserHandlerSuite) TestGetUserDetails() {
	rr := s.env.request("GET", "/api/user", "", s.token)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body := parseBody(rr)

	Expect(body["status"]).To(Equal("success"))
	Expect(body["message"]).To(Equal("User Details Fetched Successfully"))

	credentials := body["userCredentials"].(map[string]any)

	Expect(credentials["email"]).To(Equal("eu@test.com"))
	Expect(credentials["firstname"]).To(Equal("Ana"))

	// Neither the hash nor the session token belong on the wire.
	Expect(rr.Body.String()).ToNot(ContainSubstring("password"))
	Expect(rr.Body.String()).ToNot(ContainSubstring(s.token))
}

func (s *UserHandlerSuite) TestUpdateUserPartial() {
	user, err := s.env.UserRepo.GetByEmail(context.Background(), "eu@test.com")
	Expect(err).ToNot(HaveOccurred())

	rr := s.env.request("PUT", "/api/user/"+user.ID.String(), `{"firstname": "Maria"}`, s.token)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body := parseBody(rr)

	Expect(body["message"]).To(Equal("User Info Updated Successfully"))

	data := body["data"].(map[string]any)

	Expect(data["firstname"]).To(Equal("Maria"))
	Expect(data["lastname"]).To(Equal("Silva"))
	Expect(data["email"]).To(Equal("eu@test.com"))
}

func (s *UserHandlerSuite) TestUpdateUserPasswordRehashed() {
	user, err := s.env.UserRepo.GetByEmail(context.Background(), "eu@test.com")
	Expect(err).ToNot(HaveOccurred())

	previousHash := user.EncryptedPassword

	rr := s.env.request("PUT", "/api/user/"+user.ID.String(), `{"password": "newsecret1"}`, s.token)

	Expect(rr.Code).To(Equal(http.StatusOK))

	updated, err := s.env.UserRepo.GetByEmail(context.Background(), "eu@test.com")

	Expect(err).ToNot(HaveOccurred())
	Expect(updated.EncryptedPassword).ToNot(Equal(previousHash))
	Expect(updated.EncryptedPassword).ToNot(Equal("newsecret1"))
}

func (s *UserHandlerSuite) TestUpdateUserValidation() {
	rr := s.env.request("PUT", "/api/user/some-id", `{"email": "not-an-email"}`, s.token)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *UserHandlerSuite) TestGetUserRequiresAuth() {
	rr := s.env.request("GET", "/api/user", "", "")

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}
