package settings

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
	settingsRepo "github.com/hsnkrlr/berber-randevu/internal/infra/storage/settings"
	"github.com/hsnkrlr/berber-randevu/internal/service/settings/models"
	"github.com/hsnkrlr/berber-randevu/pkg/types"
)

// Service manages the business settings aggregate and the admin
// password check.
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService creates the settings service.
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetPublic returns the settings without the admin password hash.
func (s *Service) GetPublic(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("GetPublic: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPublic - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update applies a partial settings update. Nil fields keep their
// current value; the admin password hash is never touched here.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) error {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Update: settings row missing")
			return ErrSettingsNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.Contact != nil {
		current.Contact = *req.Contact
	}
	if req.LogoPath != nil {
		current.LogoPath = req.LogoPath
	}
	if req.IntervalMinutes != nil {
		current.SlotIntervalMinutes = *req.IntervalMinutes
	}
	if req.WorkingHours != nil {
		current.WorkingHours = *req.WorkingHours
	}
	if req.Services != nil {
		current.Services = *req.Services
	}

	if err := validateSettings(current); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return err
	}

	if err := s.settingsRepo.Update(ctx, current); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings updated")
	return nil
}

// VerifyPassword compares a plaintext password against the stored
// bcrypt hash. An unconfigured or empty hash rejects every password.
func (s *Service) VerifyPassword(ctx context.Context, password string) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return ErrUnauthorized
		}
		s.logger.Error("VerifyPassword: repository error: %v", err)
		return fmt.Errorf("%w: VerifyPassword - repository error: %v", ErrInternal, err)
	}

	if settings.AdminPasswordHash == "" || password == "" {
		return ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(settings.AdminPasswordHash), []byte(password)); err != nil {
		return ErrUnauthorized
	}

	return nil
}

// validateSettings checks the calendar invariants: interval bounds and
// opening strictly before closing on every open day.
func validateSettings(s *domain.Settings) error {
	if s.SlotIntervalMinutes != 0 &&
		(s.SlotIntervalMinutes < domain.MinSlotIntervalMinutes || s.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes) {
		return fmt.Errorf("%w: slot interval must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}

	week := map[string]domain.DaySchedule{
		"monday":    s.WorkingHours.Monday,
		"tuesday":   s.WorkingHours.Tuesday,
		"wednesday": s.WorkingHours.Wednesday,
		"thursday":  s.WorkingHours.Thursday,
		"friday":    s.WorkingHours.Friday,
		"saturday":  s.WorkingHours.Saturday,
		"sunday":    s.WorkingHours.Sunday,
	}

	for day, schedule := range week {
		if !schedule.IsOpen {
			continue
		}

		opening, err := types.NewTimeStringFromString(schedule.Opening)
		if err != nil {
			return fmt.Errorf("%w: %s opening time: %v", ErrInvalidInput, day, err)
		}
		closing, err := types.NewTimeStringFromString(schedule.Closing)
		if err != nil {
			return fmt.Errorf("%w: %s closing time: %v", ErrInvalidInput, day, err)
		}
		if !opening.IsBefore(closing) {
			return fmt.Errorf("%w: %s opening must be before closing", ErrInvalidInput, day)
		}
	}

	for _, svc := range s.Services {
		if svc.Name == "" {
			return fmt.Errorf("%w: service id=%d has no name", ErrInvalidInput, svc.ID)
		}
		if svc.Price < 0 {
			return fmt.Errorf("%w: service %q has a negative price", ErrInvalidInput, svc.Name)
		}
	}

	return nil
}
