package models

import (
	"time"
)

// Specialization classifies an appointment's medical domain. The set is
// closed; anything outside it is rejected at binding and at the store.
type Specialization string

const (
	Cardiologist  Specialization = "Cardiologist"
	Dermatologist Specialization = "Dermatologist"
	Pediatrician  Specialization = "Pediatrician"
	Psychiatrist  Specialization = "Psychiatrist"
)

// Valid reports whether s is one of the enumerated specializations.
func (s Specialization) Valid() bool {
	switch s {
	case Cardiologist, Dermatologist, Pediatrician, Psychiatrist:
		return true
	}
	return false
}

// Appointment represents a bookable appointment slot. It has no relation to
// User; bookings are not tracked.
type Appointment struct {
	BaseModel
	Name           string         `gorm:"size:255;not null" json:"name"`
	ImageURL       string         `gorm:"size:512;not null" json:"imageUrl"`
	Specialization Specialization `gorm:"size:32;not null;index" json:"specialization"`
	Experience     string         `gorm:"size:100;not null" json:"experience"` // free text, not numeric
	Location       string         `gorm:"size:255;not null" json:"location"`
	Date           time.Time      `json:"date"` // defaults to creation time when unset
	Slots          int            `gorm:"not null" json:"slots"`
	Fee            float64        `gorm:"not null" json:"fee"`
}
