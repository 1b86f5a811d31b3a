package server

import (
	"errors"
	"fmt"
	"strings"
)

// RequestValidator handles input validation
type RequestValidator struct{}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// ValidateAccount checks the account selector of a request.
func (v *RequestValidator) ValidateAccount(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("account must not be empty")
	}
	return nil
}

// Validate checks if the request parameters are valid
func (v *RequestValidator) Validate(account string, deviceID int64) error {
	if err := v.ValidateAccount(account); err != nil {
		return err
	}
	if deviceID <= 0 {
		return fmt.Errorf("invalid device id: %d", deviceID)
	}
	return nil
}
