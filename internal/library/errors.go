package library

import "errors"

var (
	ErrInvalidEmailDomain   = errors.New("email is not an institutional address")
	ErrComplaintTypeUnknown = errors.New("unknown complaint type")
	ErrBookingTimeRequired  = errors.New("booking date and time are required")
	ErrInvalidPeopleCount   = errors.New("people count must be at least 1")
	ErrBookNotFound         = errors.New("book not found in catalog")
	ErrBookUnavailable      = errors.New("book is not available for reservation")
)

// validationErrs are the failures callers surface as bad input. The two
// remaining sentinels map to missing and conflicting catalog state.
var validationErrs = []error{
	ErrInvalidEmailDomain,
	ErrComplaintTypeUnknown,
	ErrBookingTimeRequired,
	ErrInvalidPeopleCount,
}

// IsValidationError reports whether err is a bad-input failure rather than a
// catalog state conflict.
func IsValidationError(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
