package api_test

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suryalaha/EcoTrack-app-manage/internal/api"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/service"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/httputil"
)

func TestSignupHandler(t *testing.T) {
	env := newTestEnv(t)
	body := api.SignupRequest{
		Name:       "Asha Roy",
		Identifier: "9876543210",
		Password:   "Secret@123",
		FamilySize: 6,
		Area:       "Salt Lake",
		Pincode:    "700091",
	}
	t.Run("created", func(t *testing.T) {
		acc := &entity.Account{ID: uuid.New(), Role: entity.RoleHousehold, OutstandingBalance: decimal.NewFromInt(75)}
		env.accounts.EXPECT().Signup(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, req *service.SignupRequest) (*entity.Account, error) {
				assert.Equal(t, 6, req.FamilySize)
				return acc, nil
			})
		rec := env.do(t, http.MethodPost, "/api/v1/auth/signup", "", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decode[api.LoginResponse](t, rec)
		assert.Equal(t, acc.ID.String(), resp.UserID)
		assert.NotEmpty(t, resp.Token)
		assert.True(t, resp.Account.OutstandingBalance.Equal(decimal.NewFromInt(75)))
	})
	t.Run("duplicate", func(t *testing.T) {
		env.accounts.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
		rec := env.do(t, http.MethodPost, "/api/v1/auth/signup", "", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
	t.Run("validation", func(t *testing.T) {
		env.accounts.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrValidation)
		rec := env.do(t, http.MethodPost, "/api/v1/auth/signup", "", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, decode[httputil.ErrorResponse](t, rec).Code)
	})
	t.Run("invalid body", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/auth/signup", "", "not an object")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandlers(t *testing.T) {
	env := newTestEnv(t)
	creds := api.LoginRequest{Identifier: "9876543210", Password: "Secret@123"}
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unknown account", errorvalues.ErrUserNotFound, http.StatusNotFound},
		{"wrong password", errorvalues.ErrWrongCredentials, http.StatusForbidden},
		{"blocked", errorvalues.ErrAccountBlocked, http.StatusForbidden},
		{"wrong portal", errorvalues.ErrPortalDenied, http.StatusForbidden},
		{"storage failure", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env.accounts.EXPECT().Login(gomock.Any(), creds.Identifier, creds.Password, "192.0.2.1").Return(nil, tt.err)
			rec := env.do(t, http.MethodPost, "/api/v1/auth/login", "", creds)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
	t.Run("staff login", func(t *testing.T) {
		staff := api.LoginRequest{Identifier: "9999999999", Password: "password123", Role: entity.RoleDriver}
		acc := &entity.Account{ID: uuid.New(), Role: entity.RoleDriver, AttendanceStatus: entity.AttendancePresent}
		env.accounts.EXPECT().StaffLogin(gomock.Any(), staff.Identifier, staff.Password, entity.RoleDriver, gomock.Any()).Return(acc, nil)
		rec := env.do(t, http.MethodPost, "/api/v1/auth/staff/login", "", staff)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, entity.AttendancePresent, decode[api.LoginResponse](t, rec).Account.AttendanceStatus)
	})
	t.Run("admin login", func(t *testing.T) {
		acc := &entity.Account{ID: uuid.New(), Role: entity.RoleAdmin}
		env.accounts.EXPECT().AdminLogin(gomock.Any(), "admin@ecotrack.in", "Admin@123").Return(acc, nil)
		rec := env.do(t, http.MethodPost, "/api/v1/auth/admin/login", "", api.LoginRequest{Identifier: "admin@ecotrack.in", Password: "Admin@123"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	env := newTestEnv(t)
	t.Run("no token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("garbage token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/me", "abc.def.ghi", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("deleted account", func(t *testing.T) {
		acc := &entity.Account{ID: uuid.New(), Role: entity.RoleHousehold}
		token, err := env.jwt.GenerateToken(acc)
		require.NoError(t, err)
		env.accounts.EXPECT().GetByID(gomock.Any(), acc.ID).Return(nil, errorvalues.ErrUserNotFound)
		rec := env.do(t, http.MethodGet, "/api/v1/me", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
	t.Run("blocked after sign in", func(t *testing.T) {
		acc := &entity.Account{ID: uuid.New(), Role: entity.RoleHousehold, Status: entity.StatusBlocked}
		token, err := env.jwt.GenerateToken(acc)
		require.NoError(t, err)
		env.accounts.EXPECT().GetByID(gomock.Any(), acc.ID).Return(acc, nil)
		rec := env.do(t, http.MethodGet, "/api/v1/me", token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
	t.Run("household on admin route", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleHousehold)
		rec := env.do(t, http.MethodGet, "/api/v1/admin/accounts", token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
	t.Run("driver on household route", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleDriver)
		rec := env.do(t, http.MethodPost, "/api/v1/waste-logs", token, api.LogWasteRequest{WasteType: entity.WasteWet})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
	t.Run("profile", func(t *testing.T) {
		acc, token := env.signedIn(t, entity.RoleHousehold)
		env.accounts.EXPECT().GetByID(gomock.Any(), acc.ID).Return(acc, nil)
		rec := env.do(t, http.MethodGet, "/api/v1/me", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, acc.ID, decode[entity.Account](t, rec).ID)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}

func TestHealthAndMetrics(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
