package controller

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecogarden-api/internal/application/middleware"
	"ecogarden-api/internal/domain/entity"
	"ecogarden-api/internal/domain/gateway/api"
	"ecogarden-api/internal/domain/gateway/cache"
	"ecogarden-api/internal/domain/gateway/db"
	"ecogarden-api/internal/domain/model"
	"ecogarden-api/internal/domain/usecase/advice"
	"ecogarden-api/internal/domain/usecase/auth"
	"ecogarden-api/internal/domain/usecase/health"
	"ecogarden-api/internal/domain/usecase/user"
	"ecogarden-api/internal/domain/usecase/weather"
	"ecogarden-api/internal/infra/database/testutil"
	"ecogarden-api/internal/infra/security"
	"ecogarden-api/pkg/crypto"
	"ecogarden-api/pkg/msg"
)

const parisBody = `{"name":"Paris","main":{"temp":15,"humidity":80},"weather":[{"description":"nuageux"}],"wind":{"speed":5}}`

type testServer struct {
	echo           *echo.Echo
	jwt            *security.JWTService
	users          db.UserGateway
	store          *cache.MemoryStore
	providerStatus atomic.Int32
	providerCalls  atomic.Int32
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{}
	s.providerStatus.Store(nethttp.StatusOK)

	provider := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		s.providerCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		status := int(s.providerStatus.Load())
		w.WriteHeader(status)
		if status == nethttp.StatusOK {
			_, _ = w.Write([]byte(parisBody))
		}
	}))
	t.Cleanup(provider.Close)

	gormDB := testutil.MustOpenTestDB(t)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)

	jwtService, err := security.NewJWTService(security.JWTConfig{Secret: "test-secret", Issuer: "ecogarden"})
	require.NoError(t, err)

	s.jwt = jwtService
	s.users = db.NewGormUserGateway(gormDB)
	s.store = cache.NewMemoryStore()

	weatherGateway := api.NewWeatherGateway(api.WeatherGatewayConfig{APIKey: "key", BaseURL: provider.URL, Timeout: time.Second})
	weatherCache := cache.NewWeatherCache(s.store, cache.Options{})

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(middleware.Authenticate(jwtService))
	group := e.Group("")

	NewHomeController(group).InitHomeRoutes()
	NewHealthController(group, health.NewHealthUseCase(db.NewSQLHealthDBGateway(sqlDB, "sqlite"), cache.NewMemoryHealthGateway(s.store))).InitHealthRoutes()
	NewWeatherController(group, weather.NewWeatherUseCase(weather.Config{}, weatherGateway, weatherCache, s.users)).InitWeatherRoutes()
	NewAdviceController(group, advice.NewAdviceUseCase(db.NewGormAdviceGateway(gormDB), nil)).InitAdviceRoutes()
	NewUserController(group, user.NewUserUseCase(s.users)).InitUserRoutes()
	NewAuthController(group, auth.NewAuthUseCase(s.users, jwtService)).InitAuthRoutes()

	s.echo = e
	return s
}

func (s *testServer) token(t *testing.T, email string, roles ...string) string {
	t.Helper()
	token, err := s.jwt.Issue(model.Principal{Email: email, Roles: roles})
	require.NoError(t, err)
	return token
}

func (s *testServer) do(method, path, body, token string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestWeatherParis(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(nethttp.MethodGet, "/weather/Paris", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ville":"Paris","température":"15°C","description":"Nuageux","vent":"5 m/s","humidité":"80%"}`, rec.Body.String())
	assert.Equal(t, "public, max-age=1800, s-maxage=1800", rec.Header().Get("Cache-Control"))
	etag := rec.Header().Get("ETag")
	assert.Regexp(t, `^"[0-9a-f]{32}"$`, etag)

	again := s.do(nethttp.MethodGet, "/weather/Paris", "", "")
	assert.Equal(t, etag, again.Header().Get("ETag"))
	assert.Equal(t, int32(1), s.providerCalls.Load())

	notModified := s.do(nethttp.MethodGet, "/weather/Paris", "", "", "If-None-Match", etag)
	assert.Equal(t, nethttp.StatusNotModified, notModified.Code)
	assert.Empty(t, notModified.Body.String())
}

func TestWeatherCityPathIsDecodedOnce(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]string{
		"/weather/Saint-%C3%89tienne": "Saint-Étienne",
		"/weather/Le%20Mans":          "Le Mans",
		"/weather/a%2541":             "a%41",
		"/weather/Saint%2DDenis":      "Saint-Denis",
	}
	for path, city := range cases {
		rec := s.do(nethttp.MethodGet, path, "", "")
		require.Equal(t, nethttp.StatusOK, rec.Code, path)

		var payload model.WeatherPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, city, payload.City, path)
	}
}

func TestWeatherProfileCity(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.users.Create(context.Background(), &entity.User{Email: "ana@eco.fr", Password: "x", City: "Lyon", Pseudo: "ana"}))

	rec := s.do(nethttp.MethodGet, "/weather", "", s.token(t, "ana@eco.fr", entity.RoleUser))
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var payload model.WeatherPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Lyon", payload.City)
}

func TestWeatherAnonymousWithoutCity(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(nethttp.MethodGet, "/weather", "", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, "no city found for this user", errorOf(t, rec))
	assert.Equal(t, int32(0), s.providerCalls.Load())
}

func TestWeatherInvalidToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(nethttp.MethodGet, "/weather", "", "not-a-token")
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Equal(t, msg.GetMessage("error.invalid-token"), errorOf(t, rec))
}

func TestWeatherProviderFailure(t *testing.T) {
	s := newTestServer(t)
	s.providerStatus.Store(nethttp.StatusInternalServerError)

	rec := s.do(nethttp.MethodGet, "/weather/Paris", "", "")
	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	assert.Equal(t, "unable to retrieve weather", errorOf(t, rec))
	assert.Empty(t, rec.Header().Get("ETag"))
	assert.Equal(t, 0, s.store.Len())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	body := `{"email":"jane@eco.fr","password":"secret1","city":"Lyon","pseudo":"jane"}`

	rec := s.do(nethttp.MethodPost, "/user", body, "")
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	rec = s.do(nethttp.MethodPost, "/user", `{"email":"jane@eco.fr","password":"secret1","city":"Lyon","pseudo":"other"}`, "")
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, msg.GetMessage("user.error.email-taken"), errorOf(t, rec))

	other, err := s.users.FindByPseudo(context.Background(), "other")
	require.NoError(t, err)
	assert.Nil(t, other)

	rec = s.do(nethttp.MethodPost, "/user", `{"email":"x@eco.fr"}`, "")
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, msg.GetMessage("user.error.required", "password"), errorOf(t, rec))
}

func TestAdviceRoleGuard(t *testing.T) {
	s := newTestServer(t)
	body := `{"advice":"Semez les radis","months":[3,4]}`

	rec := s.do(nethttp.MethodPost, "/advice/add", body, "")
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)

	rec = s.do(nethttp.MethodPost, "/advice/add", body, s.token(t, "ana@eco.fr", entity.RoleUser))
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
	assert.Equal(t, msg.GetMessage("error.forbidden"), errorOf(t, rec))

	rec = s.do(nethttp.MethodPost, "/advice/add", body, s.token(t, "root@eco.fr", entity.RoleAdmin))
	assert.Equal(t, nethttp.StatusCreated, rec.Code)
}

func TestAdviceLifecycle(t *testing.T) {
	s := newTestServer(t)
	admin := s.token(t, "root@eco.fr", entity.RoleAdmin)

	rec := s.do(nethttp.MethodPost, "/advice/add", `{"advice":"Semez les radis","months":[3,4]}`, admin)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	rec = s.do(nethttp.MethodGet, "/advice/3", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var advices []model.AdviceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &advices))
	require.Len(t, advices, 1)
	assert.Equal(t, []int{3, 4}, advices[0].Months)
	assert.Contains(t, rec.Body.String(), `"month":[3,4]`)

	id := advices[0].ID
	path := func(action string) string { return "/advice/" + action + "/" + jsonNumber(id) }

	rec = s.do(nethttp.MethodPost, path("update"), `{"advice":"Semez les radis en pleine terre"}`, admin)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	rec = s.do(nethttp.MethodPost, path("update"), `{"advice":"Semez les radis en pleine terre","months":[4]}`, admin)
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	assert.Equal(t, nethttp.StatusNotFound, s.do(nethttp.MethodGet, "/advice/3", "", "").Code)
	assert.Equal(t, nethttp.StatusBadRequest, s.do(nethttp.MethodGet, "/advice/13", "", "").Code)
	assert.Equal(t, nethttp.StatusBadRequest, s.do(nethttp.MethodGet, "/advice/mars", "", "").Code)

	rec = s.do(nethttp.MethodPost, path("delete"), "", admin)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	rec = s.do(nethttp.MethodPost, path("delete"), "", admin)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestUserAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	admin := s.token(t, "root@eco.fr", entity.RoleAdmin)

	require.Equal(t, nethttp.StatusCreated, s.do(nethttp.MethodPost, "/user", `{"email":"jane@eco.fr","password":"secret1","city":"Lyon","pseudo":"jane"}`, "").Code)
	jane, err := s.users.FindByEmail(context.Background(), "jane@eco.fr")
	require.NoError(t, err)

	update := `{"email":"jane@eco.fr","password":"secret2","city":"Nantes","pseudo":"jane","role":"ROLE_ADMIN"}`
	assert.Equal(t, nethttp.StatusForbidden, s.do(nethttp.MethodPut, "/user/update/"+jsonNumber(jane.ID), update, s.token(t, "jane@eco.fr", entity.RoleUser)).Code)
	assert.Equal(t, nethttp.StatusNotFound, s.do(nethttp.MethodPut, "/user/update/999", update, admin).Code)
	assert.Equal(t, nethttp.StatusOK, s.do(nethttp.MethodPut, "/user/update/"+jsonNumber(jane.ID), update, admin).Code)

	updated, err := s.users.FindByID(context.Background(), jane.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nantes", updated.City)
	assert.True(t, updated.HasRole(entity.RoleAdmin))

	assert.Equal(t, nethttp.StatusOK, s.do(nethttp.MethodDelete, "/user/delete/"+jsonNumber(jane.ID), "", admin).Code)
	assert.Equal(t, nethttp.StatusNotFound, s.do(nethttp.MethodDelete, "/user/delete/"+jsonNumber(jane.ID), "", admin).Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	hash, err := crypto.HashPassword("secret1")
	require.NoError(t, err)
	require.NoError(t, s.users.Create(context.Background(), &entity.User{Email: "root@eco.fr", Password: hash, Pseudo: "root", Roles: []string{entity.RoleAdmin}}))

	rec := s.do(nethttp.MethodPost, "/auth/login", `{"email":"root@eco.fr","password":"secret1"}`, "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var login model.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	rec = s.do(nethttp.MethodPost, "/advice/add", `{"advice":"Taillez les rosiers","months":[2]}`, login.Token)
	assert.Equal(t, nethttp.StatusCreated, rec.Code)

	rec = s.do(nethttp.MethodPost, "/auth/login", `{"email":"root@eco.fr","password":"nope"}`, "")
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestHomeAndHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(nethttp.MethodGet, "/home", "", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"`+msg.GetMessage("app.welcome")+`"}`, rec.Body.String())

	rec = s.do(nethttp.MethodGet, "/health", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var healthResponse model.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &healthResponse))
	assert.Equal(t, model.StatusUp, healthResponse.Status)

	rec = s.do(nethttp.MethodGet, "/unknown", "", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestEtagMatches(t *testing.T) {
	assert.True(t, etagMatches(`"abc"`, `"abc"`))
	assert.True(t, etagMatches(`"x", W/"abc"`, `"abc"`))
	assert.True(t, etagMatches(`*`, `"abc"`))
	assert.False(t, etagMatches(``, `"abc"`))
	assert.False(t, etagMatches(`"abd"`, `"abc"`))
}

func jsonNumber(id uint) string {
	body, _ := json.Marshal(id)
	return string(body)
}
