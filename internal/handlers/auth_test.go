package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DoaaAltair/Elite-Home/internal/auth"
	dom "github.com/DoaaAltair/Elite-Home/internal/domain"
	"github.com/DoaaAltair/Elite-Home/internal/dto"
	"github.com/DoaaAltair/Elite-Home/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memAccountRepo backs the auth handler tests without Postgres.
type memAccountRepo struct {
	nextID int64
	rows   map[string]dom.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{rows: map[string]dom.Account{}}
}

func (r *memAccountRepo) GetByUsername(_ context.Context, username string) (dom.Account, error) {
	a, ok := r.rows[username]
	if !ok {
		return dom.Account{}, pgx.ErrNoRows
	}
	return a, nil
}

func (r *memAccountRepo) Create(_ context.Context, username, passwordDigest string) (dom.Account, error) {
	r.nextID++
	a := dom.Account{
		ID:             r.nextID,
		Username:       username,
		PasswordDigest: passwordDigest,
		CreatedAt:      time.Now().UTC(),
	}
	r.rows[username] = a
	return a, nil
}

// errAccountRepo fails every operation with the same store error.
type errAccountRepo struct{ err error }

func (r errAccountRepo) GetByUsername(context.Context, string) (dom.Account, error) {
	return dom.Account{}, r.err
}

func (r errAccountRepo) Create(context.Context, string, string) (dom.Account, error) {
	return dom.Account{}, r.err
}

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(service.NewAuthService(newMemAccountRepo(), auth.NewBcryptHasher(4)))

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r
}

func TestRegisterThenLogin(t *testing.T) {
	r := newAuthTestRouter()

	w := doJSON(t, r, http.MethodPost, "/register", `{"username":"alice","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var registered dto.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.Equal(t, int64(1), registered.ID)

	w = doJSON(t, r, http.MethodPost, "/login", `{"username":"alice","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var logged dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	assert.Equal(t, "alice", logged.Username)
}

func TestRegisterMissingFields(t *testing.T) {
	r := newAuthTestRouter()

	w := doJSON(t, r, http.MethodPost, "/register", `{"username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/register", `{"password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateUsernameIsBadRequest(t *testing.T) {
	r := newAuthTestRouter()

	w := doJSON(t, r, http.MethodPost, "/register", `{"username":"alice","password":"x"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/register", `{"username":"alice","password":"y"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "username already taken")
}

func TestLoginMissingFields(t *testing.T) {
	r := newAuthTestRouter()

	w := doJSON(t, r, http.MethodPost, "/login", `{"username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthStoreFailureReturnsGenericServerError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	storeErr := errors.New("connection refused")
	h := NewAuthHandler(service.NewAuthService(errAccountRepo{err: storeErr}, auth.NewBcryptHasher(4)))

	var captured []string
	r := gin.New()
	r.Use(captureErrors(&captured))
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	w := doJSON(t, r, http.MethodPost, "/register", `{"username":"alice","password":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"server error"}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/login", `{"username":"alice","password":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"server error"}`, w.Body.String())

	require.Len(t, captured, 2)
	for _, msg := range captured {
		assert.Contains(t, msg, "connection refused")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r := newAuthTestRouter()

	w := doJSON(t, r, http.MethodPost, "/register", `{"username":"alice","password":"x"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPassword := doJSON(t, r, http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`)
	unknownUser := doJSON(t, r, http.MethodPost, "/login", `{"username":"ghost","password":"anything"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}
