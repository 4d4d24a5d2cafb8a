package create_appointment

import (
	"fmt"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if req.PhoneNumber == "" {
		return fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}
	if len(req.PhoneNumber) > domain.MaxPhoneNumberLength {
		return fmt.Errorf("%w: phone number is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := req.StartTime.Minutes(); err != nil {
		return fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, req.StartTime)
	}

	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	return nil
}
