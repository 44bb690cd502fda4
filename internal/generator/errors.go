package generator

import (
	"errors"
	"strconv"
)

// ErrInvalidProfile is returned (wrapped) when a profile cannot be turned
// into a plan: a required field is missing, an enum value is unknown, or the
// goal has no template.
var ErrInvalidProfile = errors.New("invalid profile")

// ErrUnknownStrategy is returned by ForName for an unregistered name.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ProfileError describes which profile field was rejected.
type ProfileError struct {
	Field  string
	Reason string
}

func (e *ProfileError) Error() string {
	return "invalid profile: " + e.Field + ": " + e.Reason
}

// Is makes errors.Is(err, ErrInvalidProfile) hold for every ProfileError.
func (e *ProfileError) Is(target error) bool {
	return target == ErrInvalidProfile
}

func quote(s string) string {
	return strconv.Quote(s)
}
