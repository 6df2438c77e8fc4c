package catalog

import (
	"strings"

	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/validate"
)

// Validate returns one message per violated field rule.
// The same rules apply on create and on the merged result of an update.
func Validate(s *CareService) []string {
	var problems []string

	switch {
	case strings.TrimSpace(s.Name) == "":
		problems = append(problems, "Service name is required")
	case !validate.MinTrimmed(s.Name, MinNameLength):
		problems = append(problems, "Service name must be at least 3 characters")
	}

	switch {
	case strings.TrimSpace(s.Description) == "":
		problems = append(problems, "Service description is required")
	case !validate.MinTrimmed(s.Description, MinDescriptionLength):
		problems = append(problems, "Service description must be at least 10 characters")
	}

	if s.Price < 0 {
		problems = append(problems, "Price must be a positive number")
	}

	switch {
	case strings.TrimSpace(s.ImageURL) == "":
		problems = append(problems, "Service image URL is required")
	case !validate.ImageURL(s.ImageURL):
		problems = append(problems, "Please provide a valid image URL")
	}

	if s.Duration < MinDuration {
		problems = append(problems, "Duration must be at least 15 minutes")
	}

	return problems
}
