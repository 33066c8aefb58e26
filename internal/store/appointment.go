package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"clinic-booking-server/internal/models"
)

// MaxListResults caps how many rows List and Search return. There is no
// pagination; the cap keeps a large table from unbounded response sizes.
const MaxListResults = 1000

// AppointmentPatch carries the fields of a partial update. Nil fields are
// absent from the request and must leave the stored values untouched.
type AppointmentPatch struct {
	Name           *string
	ImageURL       *string
	Specialization *models.Specialization
	Experience     *string
	Location       *string
	Date           *time.Time
	Slots          *int
	Fee            *float64
}

// changes returns the column assignments for the non-nil fields only.
func (p AppointmentPatch) changes() map[string]any {
	m := map[string]any{}
	if p.Name != nil {
		m["name"] = *p.Name
	}
	if p.ImageURL != nil {
		m["image_url"] = *p.ImageURL
	}
	if p.Specialization != nil {
		m["specialization"] = *p.Specialization
	}
	if p.Experience != nil {
		m["experience"] = *p.Experience
	}
	if p.Location != nil {
		m["location"] = *p.Location
	}
	if p.Date != nil {
		m["date"] = *p.Date
	}
	if p.Slots != nil {
		m["slots"] = *p.Slots
	}
	if p.Fee != nil {
		m["fee"] = *p.Fee
	}
	return m
}

// AppointmentStore is the persistence contract for appointment records.
type AppointmentStore interface {
	List(ctx context.Context) ([]models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	Update(ctx context.Context, id string, patch AppointmentPatch) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query AppointmentQuery) ([]models.Appointment, error)
}

type gormAppointmentStore struct {
	db *gorm.DB
}

// NewAppointmentStore returns an AppointmentStore backed by db. db may be
// nil when the startup connection failed; every call then reports
// ErrUnavailable.
func NewAppointmentStore(db *gorm.DB) AppointmentStore {
	return &gormAppointmentStore{db: db}
}

func (s *gormAppointmentStore) List(ctx context.Context) ([]models.Appointment, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	appointments := make([]models.Appointment, 0)
	err := s.db.WithContext(ctx).Limit(MaxListResults).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *gormAppointmentStore) Create(ctx context.Context, appointment *models.Appointment) error {
	if s.db == nil {
		return ErrUnavailable
	}
	if err := validateAppointment(appointment); err != nil {
		return err
	}
	if appointment.Date.IsZero() {
		appointment.Date = time.Now()
	}
	return s.db.WithContext(ctx).Create(appointment).Error
}

func (s *gormAppointmentStore) Update(ctx context.Context, id string, patch AppointmentPatch) (*models.Appointment, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	if patch.Specialization != nil && !patch.Specialization.Valid() {
		return nil, ErrInvalid
	}

	var appointment models.Appointment
	if err := s.db.WithContext(ctx).First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	changes := patch.changes()
	if len(changes) == 0 {
		return &appointment, nil
	}
	if err := s.db.WithContext(ctx).Model(&appointment).Updates(changes).Error; err != nil {
		return nil, err
	}
	// re-read so the response reflects exactly what was stored
	if err := s.db.WithContext(ctx).First(&appointment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *gormAppointmentStore) Delete(ctx context.Context, id string) error {
	if s.db == nil {
		return ErrUnavailable
	}
	res := s.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormAppointmentStore) Search(ctx context.Context, query AppointmentQuery) ([]models.Appointment, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	tx := s.db.WithContext(ctx).Limit(MaxListResults)
	if clauses, args := query.conditions(); len(clauses) > 0 {
		tx = tx.Where(strings.Join(clauses, " AND "), args...)
	}
	if order := query.order(); order != "" {
		tx = tx.Order(order)
	}
	appointments := make([]models.Appointment, 0)
	if err := tx.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func validateAppointment(a *models.Appointment) error {
	if a.Name == "" || a.ImageURL == "" || a.Experience == "" || a.Location == "" {
		return ErrInvalid
	}
	if !a.Specialization.Valid() {
		return ErrInvalid
	}
	return nil
}
