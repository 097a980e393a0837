package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/service"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

// interleavedAccounts runs between once the sign-in has read the account and
// before it writes anything back.
type interleavedAccounts struct {
	*memAccounts
	between func()
}

func (ia *interleavedAccounts) FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error) {
	acc, err := ia.memAccounts.FindByIdentifier(ctx, identifier)
	if err == nil && ia.between != nil {
		ia.between()
	}
	return acc, err
}

func TestAdminChangesSurviveConcurrentLogin(t *testing.T) {
	ctx := context.Background()
	clock := newClock(2024, time.March, 10, 10, 15, 0)
	newStores := func(t *testing.T) (*memAccounts, *interleavedAccounts, *service.AccountService, *service.AccountService) {
		t.Helper()
		store := newMemAccounts()
		racing := &interleavedAccounts{memAccounts: store}
		settings := &memSettings{plans: plans}
		admin := service.NewAccountService(store, settings, clock.now, newRecorder())
		user := service.NewAccountService(racing, settings, clock.now, newRecorder())
		return store, racing, admin, user
	}
	signup := func(t *testing.T, admin *service.AccountService) uuid.UUID {
		t.Helper()
		acc, err := admin.Signup(ctx, &service.SignupRequest{
			Name:       "Asha Roy",
			Identifier: "9876543210",
			Password:   testPassword,
			FamilySize: 4,
			Area:       "Salt Lake",
			Pincode:    "700091",
		})
		require.NoError(t, err)
		return acc.ID
	}

	t.Run("block", func(t *testing.T) {
		store, racing, admin, user := newStores(t)
		id := signup(t, admin)
		racing.between = func() { require.NoError(t, admin.SetBlocked(ctx, id, true)) }

		_, err := user.Login(ctx, "9876543210", testPassword, "10.0.0.7")
		assert.ErrorIs(t, err, errorvalues.ErrAccountBlocked)
		stored, err := store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusBlocked, stored.Status)
		assert.Nil(t, stored.LastLoginTime)
	})
	t.Run("warning", func(t *testing.T) {
		store, racing, admin, user := newStores(t)
		id := signup(t, admin)
		racing.between = func() { require.NoError(t, admin.Warn(ctx, id, "Segregate your waste")) }

		acc, err := user.Login(ctx, "9876543210", testPassword, "10.0.0.7")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWarned, acc.Status)
		assert.Equal(t, "Segregate your waste", acc.WarningMessage)
		stored, err := store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWarned, stored.Status)
		assert.Equal(t, "Segregate your waste", stored.WarningMessage)
		assert.Equal(t, "10.0.0.7", stored.LastIPAddress)
	})
	t.Run("leave", func(t *testing.T) {
		store, racing, admin, user := newStores(t)
		driver, err := admin.Provision(ctx, &service.ProvisionRequest{
			Name:       "Suresh Singh",
			Identifier: "9999999999",
			Password:   "password123",
			Role:       entity.RoleDriver,
		})
		require.NoError(t, err)
		racing.between = func() {
			require.NoError(t, admin.SetAttendance(ctx, driver.ID, entity.AttendanceOnLeave))
		}

		acc, err := user.StaffLogin(ctx, "9999999999", "password123", entity.RoleDriver, "")
		require.NoError(t, err)
		assert.Equal(t, entity.AttendanceOnLeave, acc.AttendanceStatus)
		stored, err := store.FindByID(ctx, driver.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.AttendanceOnLeave, stored.AttendanceStatus)
		assert.Equal(t, 1, stored.LoginStreak)
	})
}
