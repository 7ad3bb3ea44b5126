package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
	"github.com/hsnkrlr/berber-randevu/pkg/psqlbuilder"
	"github.com/hsnkrlr/berber-randevu/pkg/txmanager"
)

// The settings aggregate is a single row; structured parts (contact,
// working hours, service catalog) live in JSONB columns.
const settingsRowID = 1

// Repository persists the business settings aggregate.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository creates a settings repository over db.
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get loads the settings row.
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"name",
		"description",
		"contact",
		"logo_path",
		"slot_interval_minutes",
		"working_hours",
		"services",
		"admin_password_hash",
		"updated_at",
	).
		From("settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s                domain.Settings
		contactJSON      []byte
		workingHoursJSON []byte
		servicesJSON     []byte
		updatedAt        sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.Name,
		&s.Description,
		&contactJSON,
		&s.LogoPath,
		&s.SlotIntervalMinutes,
		&workingHoursJSON,
		&servicesJSON,
		&s.AdminPasswordHash,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(contactJSON, &s.Contact); err != nil {
		return nil, fmt.Errorf("%w: Get - contact: %v", ErrDecode, err)
	}
	if err := json.Unmarshal(workingHoursJSON, &s.WorkingHours); err != nil {
		return nil, fmt.Errorf("%w: Get - working hours: %v", ErrDecode, err)
	}
	if err := json.Unmarshal(servicesJSON, &s.Services); err != nil {
		return nil, fmt.Errorf("%w: Get - services: %v", ErrDecode, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Update upserts the settings row with the full aggregate.
func (r *Repository) Update(ctx context.Context, s *domain.Settings) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	contactJSON, err := json.Marshal(s.Contact)
	if err != nil {
		return fmt.Errorf("%w: Update - contact: %v", ErrEncode, err)
	}
	workingHoursJSON, err := json.Marshal(s.WorkingHours)
	if err != nil {
		return fmt.Errorf("%w: Update - working hours: %v", ErrEncode, err)
	}
	servicesJSON, err := json.Marshal(s.Services)
	if err != nil {
		return fmt.Errorf("%w: Update - services: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("settings").
		Columns(
			"id",
			"name",
			"description",
			"contact",
			"logo_path",
			"slot_interval_minutes",
			"working_hours",
			"services",
			"admin_password_hash",
		).
		Values(
			settingsRowID,
			s.Name,
			s.Description,
			contactJSON,
			s.LogoPath,
			s.SlotIntervalMinutes,
			workingHoursJSON,
			servicesJSON,
			s.AdminPasswordHash,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			contact = EXCLUDED.contact,
			logo_path = EXCLUDED.logo_path,
			slot_interval_minutes = EXCLUDED.slot_interval_minutes,
			working_hours = EXCLUDED.working_hours,
			services = EXCLUDED.services,
			admin_password_hash = EXCLUDED.admin_password_hash,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Update - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
