// Package validate holds the field-shape rules shared by the domain packages and
// registers them as gin binding tags.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/objectid"
)

var (
	phoneRegex    = regexp.MustCompile(`^[0-9]{10}$`)
	imageURLRegex = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)
)

// Phone reports whether s is exactly ten digits.
func Phone(s string) bool {
	return phoneRegex.MatchString(s)
}

// ImageURL reports whether s looks like an http(s) image URL.
func ImageURL(s string) bool {
	return imageURLRegex.MatchString(s)
}

// MinTrimmed reports whether s has at least n characters after trimming spaces.
func MinTrimmed(s string, n int) bool {
	return len([]rune(strings.TrimSpace(s))) >= n
}

var registerOnce sync.Once

// RegisterBindings adds the custom tags "objectid" and "phone10" to gin's validator.
// Safe to call more than once.
func RegisterBindings() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		if err = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			return objectid.IsValid(fl.Field().String())
		}); err != nil {
			return
		}
		err = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
			return Phone(fl.Field().String())
		})
	})
	return err
}
