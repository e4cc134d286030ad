package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TripID) == "" {
		return fmt.Errorf("%w: tripID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Participant.Name) == "" {
		return fmt.Errorf("%w: participant name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Participant.PhoneNumber) == "" {
		return fmt.Errorf("%w: participant phone number is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Participant.PickupPoint) == "" {
		return fmt.Errorf("%w: participant pickup point is required", ErrInvalidInput)
	}

	return nil
}
