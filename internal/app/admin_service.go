package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"date_dimension/internal/domain/calendar"
	"date_dimension/internal/domain/override"
	idb "date_dimension/internal/infra/database"
)

// Custom application-level errors for admin service
var ErrAdminNotAuthorized = fmt.Errorf("performing user is not authorized as an admin")
var ErrHolidayAlreadyExists = fmt.Errorf("a holiday override already exists on this date")
var ErrEmptyHolidayName = fmt.Errorf("holiday name cannot be empty")

// AdminService manages holiday overrides on behalf of the configured admin.
type AdminService struct {
	overrideRepo    override.Repository
	adminTelegramID int64
}

func NewAdminService(or override.Repository, adminID int64) *AdminService {
	return &AdminService{
		overrideRepo:    or,
		adminTelegramID: adminID,
	}
}

// AddHoliday stores a one-off holiday on date.
func (s *AdminService) AddHoliday(ctx context.Context, performingAdminID int64, date calendar.Date, name string) (*override.Override, error) {
	if performingAdminID != s.adminTelegramID {
		return nil, ErrAdminNotAuthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyHolidayName
	}

	o := &override.Override{Date: date, Name: name}
	if err := s.overrideRepo.Create(ctx, o); err != nil {
		if errors.Is(err, idb.ErrDuplicateHoliday) {
			return nil, ErrHolidayAlreadyExists
		}
		return nil, fmt.Errorf("failed to create holiday override in repository: %w", err)
	}
	return o, nil
}

// RemoveHoliday deletes the override on date. Built-in holidays cannot be
// removed.
func (s *AdminService) RemoveHoliday(ctx context.Context, performingAdminID int64, date calendar.Date) error {
	if performingAdminID != s.adminTelegramID {
		return ErrAdminNotAuthorized
	}
	if err := s.overrideRepo.Delete(ctx, date); err != nil {
		if errors.Is(err, idb.ErrHolidayNotFound) {
			return idb.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday override: %w", err)
	}
	return nil
}

func (s *AdminService) ListHolidays(ctx context.Context, performingAdminID int64) ([]*override.Override, error) {
	if performingAdminID != s.adminTelegramID {
		return nil, ErrAdminNotAuthorized
	}
	return s.overrideRepo.ListAll(ctx)
}

// IsAdmin reports whether id is the configured admin.
func (s *AdminService) IsAdmin(id int64) bool {
	return id == s.adminTelegramID
}
