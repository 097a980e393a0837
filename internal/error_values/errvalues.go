package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrAccountBlocked   = errors.New("account is blocked")
	ErrPortalDenied     = errors.New("access denied for this portal")
	ErrWrongRole        = errors.New("operation not allowed for this role")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")

	ErrAlreadyLoggedToday = errors.New("waste already logged today")

	ErrPaymentNotFound = errors.New("payment doesn't exist")
	ErrPaymentSettled  = errors.New("payment already settled")

	ErrBookingNotFound   = errors.New("booking doesn't exist")
	ErrFeeNotAdjustable  = errors.New("booking fee doesn't need adjustment")
	ErrBookingCompleted  = errors.New("booking already completed")
	ErrComplaintNotFound = errors.New("complaint doesn't exist")
	ErrSettingsNotFound  = errors.New("portal settings are not initialized")
	ErrNoActiveDriver    = errors.New("no driver reported a location recently")
)
