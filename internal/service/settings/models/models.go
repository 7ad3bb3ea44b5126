package models

import (
	"github.com/hsnkrlr/berber-randevu/internal/domain"
)

// SettingsResponse is the public view of the business settings.
// The admin password hash never appears here.
type SettingsResponse struct {
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	Contact         domain.Contact      `json:"contact"`
	LogoPath        *string             `json:"logo,omitempty"`
	IntervalMinutes int                 `json:"interval"`
	WorkingHours    domain.WeekSchedule `json:"workingHours"`
	Services        []domain.Service    `json:"services"`
}

// UpdateSettingsRequest carries a partial settings update: nil fields
// keep their current value.
type UpdateSettingsRequest struct {
	Name            *string              `json:"name,omitempty"`
	Description     *string              `json:"description,omitempty"`
	Contact         *domain.Contact      `json:"contact,omitempty"`
	LogoPath        *string              `json:"logo,omitempty"`
	IntervalMinutes *int                 `json:"interval,omitempty"`
	WorkingHours    *domain.WeekSchedule `json:"workingHours,omitempty"`
	Services        *[]domain.Service    `json:"services,omitempty"`
}

// FromDomainSettings converts the settings aggregate to its public view.
func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	return &SettingsResponse{
		Name:            s.Name,
		Description:     s.Description,
		Contact:         s.Contact,
		LogoPath:        s.LogoPath,
		IntervalMinutes: s.Interval(),
		WorkingHours:    s.WorkingHours,
		Services:        s.Services,
	}
}
