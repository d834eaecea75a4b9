package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/database"
	adapterhttp "github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/routes"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/telemetry"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/auth"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/cache"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/logging"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/test"
)

// testEnv wires a full router over an in-memory store, the way main does it
// minus telemetry and hardening middleware.
type testEnv struct {
	DB       *database.DB
	Router   *gin.Engine
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db := test.InitTestDB()

	logger, err := logging.New("test")

	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	container := adapterhttp.NewContainer(adapterhttp.ContainerOptions{
		DB:         db,
		Tokens:     auth.NewTokenManager("test-secret", time.Hour),
		TokenCache: cache.NewMemoryTokenCache(time.Minute),
		Telemetry:  telemetry.NewNoOpProbe(),
		Logger:     logger,
	})

	router := routes.SetupRouterForTests(routes.HandlersConfig{
		AuthHandler: container.AuthHandler,
		UserHandler: container.UserHandler,
		TodoHandler: container.TodoHandler,

		AuthUseCase: container.AuthUseCase,
		TokenCache:  container.TokenCache,
	})

	return &testEnv{
		DB:       db,
		Router:   router,
		UserRepo: container.UserRepo,
		TodoRepo: container.TodoRepo,
	}
}

func (e *testEnv) request(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader

	if body != "" {
		reader = strings.NewReader(body)
	}

	req, _ := http.NewRequest(method, path, reader)

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.Router.ServeHTTP(rr, req)

	return rr
}

func (e *testEnv) signup(email, password string) *httptest.ResponseRecorder {
	return e.request("POST", "/api/signup", `{"email": "`+email+`", "password": "`+password+`"}`, "")
}

// login signs the user in and returns the session token from the envelope.
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	rr := e.request("POST", "/api/login", `{"email": "`+email+`", "password": "`+password+`"}`, "")

	body := parseBody(rr)

	token, _ := body["token"].(string)

	if token == "" {
		t.Fatalf("login did not return a token: %s", rr.Body.String())
	}

	return token
}

func performRequest(e *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.Router.ServeHTTP(rr, req)

	return rr
}

func parseBody(rr *httptest.ResponseRecorder) gin.H {
	data := gin.H{}
	json.Unmarshal(rr.Body.Bytes(), &data)

	return data
}
