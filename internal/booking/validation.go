package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/validate"
)

const (
	MinCustomerNameLength = 3
	MaxNotesLength        = 500
)

func validateCustomerName(name string) string {
	switch {
	case strings.TrimSpace(name) == "":
		return "Customer name is required"
	case !validate.MinTrimmed(name, MinCustomerNameLength):
		return "Customer name must be at least 3 characters"
	}
	return ""
}

func validatePhone(phone string) string {
	switch {
	case phone == "":
		return "Phone number is required"
	case !validate.Phone(phone):
		return "Phone number must be exactly 10 digits"
	}
	return ""
}

func validatePetName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Pet name is required"
	}
	return ""
}

// validateAppointment requires at strictly after now.
func validateAppointment(at, now time.Time) string {
	switch {
	case at.IsZero():
		return "Appointment date and time are required"
	case !at.After(now):
		return "Appointment date must be in the future"
	}
	return ""
}

func validateNotes(notes string) string {
	if len([]rune(notes)) > MaxNotesLength {
		return fmt.Sprintf("Notes cannot exceed %d characters", MaxNotesLength)
	}
	return ""
}

func collect(messages ...string) []string {
	var out []string
	for _, m := range messages {
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}
