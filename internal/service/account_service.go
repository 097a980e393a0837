package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/suryalaha/EcoTrack-app-manage/internal/engine"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/repository"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	repo     repository.AccountsRepositoryI
	settings repository.SettingsRepositoryI
	now      Clock
	events   EventRecorder
}

func NewAccountService(accountsRepo repository.AccountsRepositoryI, settingsRepo repository.SettingsRepositoryI, clock Clock, events EventRecorder) *AccountService {
	return &AccountService{
		repo:     accountsRepo,
		settings: settingsRepo,
		now:      clock,
		events:   events,
	}
}

func (as *AccountService) Signup(ctx context.Context, req *SignupRequest) (*entity.Account, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	plans, err := as.settings.GetPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading subscription plans: %w", err)
	}
	now := as.now()
	identifier := NormalizeIdentifier(req.Identifier)
	acc := &entity.Account{
		Name:         req.Name,
		Identifier:   identifier,
		PasswordHash: passwordHash,
		Role:         entity.RoleHousehold,
		Status:       entity.StatusActive,
		FamilySize:   req.FamilySize,
		Address: entity.Address{
			Area:     req.Area,
			Landmark: req.Landmark,
			Pincode:  req.Pincode,
		},
		OutstandingBalance:  engine.SelectMonthlyFee(req.FamilySize, *plans),
		LoginStreak:         1,
		LastStreakIncrement: &now,
		BookingReminders:    true,
		CreatedAt:           now,
	}
	// Email accounts are reachable at their identifier
	if isEmail(identifier) {
		acc.Email = identifier
	}
	acc.ID, err = as.repo.Create(ctx, acc)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	return acc, nil
}

func (as *AccountService) Login(ctx context.Context, identifier, password, ip string) (*entity.Account, error) {
	acc, err := as.authenticate(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	if acc.Role != entity.RoleHousehold {
		return nil, errorvalues.ErrPortalDenied
	}
	now := as.now()
	acc.LoginStreak, acc.LastStreakIncrement = engine.NextStreak(now, acc.LastStreakIncrement, acc.LoginStreak)
	acc.LastLoginTime = &now
	acc.LastIPAddress = ip
	if err := as.recordLogin(ctx, acc); err != nil {
		return nil, err
	}
	as.events.IncLogin("household")
	return acc, nil
}

func (as *AccountService) StaffLogin(ctx context.Context, identifier, password string, role entity.Role, ip string) (*entity.Account, error) {
	if !role.IsStaff() {
		return nil, fmt.Errorf("%w: staff portal serves employees and drivers", errorvalues.ErrValidation)
	}
	acc, err := as.authenticate(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	if acc.Role != role {
		return nil, errorvalues.ErrPortalDenied
	}
	now := as.now()
	acc.LoginStreak, acc.LastStreakIncrement = engine.NextStreak(now, acc.LastStreakIncrement, acc.LoginStreak)
	if acc.AttendanceStatus != entity.AttendanceOnLeave {
		acc.AttendanceStatus = engine.ClassifyAttendance(now)
	}
	acc.LastLoginTime = &now
	acc.LastIPAddress = ip
	if err := as.recordLogin(ctx, acc); err != nil {
		return nil, err
	}
	as.events.IncLogin(string(role))
	return acc, nil
}

func (as *AccountService) AdminLogin(ctx context.Context, identifier, password string) (*entity.Account, error) {
	acc, err := as.authenticate(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	if acc.Role != entity.RoleAdmin {
		return nil, errorvalues.ErrPortalDenied
	}
	now := as.now()
	acc.LastLoginTime = &now
	if err := as.recordLogin(ctx, acc); err != nil {
		return nil, err
	}
	as.events.IncLogin("admin")
	return acc, nil
}

func (as *AccountService) recordLogin(ctx context.Context, acc *entity.Account) error {
	if err := as.repo.RecordLogin(ctx, acc); err != nil {
		if errors.Is(err, errorvalues.ErrAccountBlocked) {
			return err
		}
		return fmt.Errorf("storing login error: %w", err)
	}
	return nil
}

// authenticate looks the account up and checks the blocked flag before the
// password.
func (as *AccountService) authenticate(ctx context.Context, identifier, password string) (*entity.Account, error) {
	acc, err := as.repo.FindByIdentifier(ctx, NormalizeIdentifier(identifier))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if acc.Status == entity.StatusBlocked {
		return nil, errorvalues.ErrAccountBlocked
	}
	if err = bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return acc, nil
}

func (as *AccountService) Provision(ctx context.Context, req *ProvisionRequest) (*entity.Account, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	identifier := NormalizeIdentifier(req.Identifier)
	acc := &entity.Account{
		Name:         req.Name,
		Identifier:   identifier,
		PasswordHash: passwordHash,
		Role:         req.Role,
		Status:       entity.StatusActive,
		FamilySize:   1,
		CreatedAt:    as.now(),
	}
	if isEmail(identifier) {
		acc.Email = identifier
	}
	acc.ID, err = as.repo.Create(ctx, acc)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	return acc, nil
}

func (as *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	acc, err := as.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return acc, nil
}

func (as *AccountService) List(ctx context.Context, role entity.Role, opts PaginationOpts) ([]*entity.Account, error) {
	accounts, err := as.repo.List(ctx, role, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return accounts, nil
}

func (as *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := as.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("repository deleting error: %w", err)
	}
	return nil
}

func (as *AccountService) Warn(ctx context.Context, id uuid.UUID, message string) error {
	if message == "" {
		return fmt.Errorf("%w: warning message is empty", errorvalues.ErrValidation)
	}
	return repoUpdateErr(as.repo.SetWarning(ctx, id, message))
}

func (as *AccountService) ClearWarning(ctx context.Context, id uuid.UUID) error {
	return repoUpdateErr(as.repo.ClearWarning(ctx, id))
}

func (as *AccountService) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	status := entity.StatusActive
	if blocked {
		status = entity.StatusBlocked
	}
	return repoUpdateErr(as.repo.SetStatus(ctx, id, status))
}

func (as *AccountService) SetAttendance(ctx context.Context, id uuid.UUID, status entity.AttendanceStatus) error {
	switch status {
	case entity.AttendancePresent, entity.AttendanceAbsent, entity.AttendanceOnLeave:
	default:
		return fmt.Errorf("%w: unknown attendance status %q", errorvalues.ErrValidation, status)
	}
	acc, err := as.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !acc.Role.IsStaff() {
		return errorvalues.ErrWrongRole
	}
	return repoUpdateErr(as.repo.SetAttendance(ctx, id, status))
}

func (as *AccountService) UpdateProfile(ctx context.Context, id uuid.UUID, upd *ProfileUpdate) (*entity.Account, error) {
	if err := validateStruct(upd); err != nil {
		return nil, err
	}
	acc, err := as.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		acc.Name = *upd.Name
	}
	if upd.Email != nil {
		acc.Email = *upd.Email
	}
	if upd.BookingReminders != nil {
		acc.BookingReminders = *upd.BookingReminders
	}
	if err := repoUpdateErr(as.repo.UpdateProfile(ctx, acc)); err != nil {
		return nil, err
	}
	return acc, nil
}

func repoUpdateErr(err error) error {
	if err == nil || errors.Is(err, errorvalues.ErrUserNotFound) {
		return err
	}
	return fmt.Errorf("repository updating error: %w", err)
}

func isEmail(identifier string) bool {
	return strings.Contains(identifier, "@")
}
