package validatorx

import (
	"regexp"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Algerian mobile numbering: optional leading 0 or +213, then 5/6/7 and 8 digits.
var dzPhonePattern = regexp.MustCompile(`^(0|\+213)[567][0-9]{8}$`)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("dzphone", func(fl gpvalidator.FieldLevel) bool {
		return dzPhonePattern.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// IsDZPhone reports whether s is a valid Algerian mobile number.
func IsDZPhone(s string) bool {
	return dzPhonePattern.MatchString(s)
}
