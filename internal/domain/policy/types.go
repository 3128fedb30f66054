package policy

import (
	"errors"
	"regexp"
)

// Action is the direction of a policy toggle.
type Action string

const (
	ActionEnabled  Action = "enabled"
	ActionDisabled Action = "disabled"
)

// Effect describes what the toggle means for the device behind the policy:
// an enabled policy blocks its internet access, a disabled one allows it.
func (a Action) Effect() string {
	if a == ActionEnabled {
		return "internet blocked"
	}
	return "internet allowed"
}

var idPattern = regexp.MustCompile(`^[0-9]+$`)

// ValidID reports whether id is a well-formed policy reference. The daemon
// only knows policies by numeric id, so anything else is treated as an
// unknown route rather than a bad argument.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// ToggleResult is the response payload for enable/disable operations.
type ToggleResult struct {
	Success  bool   `json:"success"`
	Action   Action `json:"action"`
	PolicyID string `json:"policyId"`
	Result   any    `json:"result"`
}

// ErrBackendUnavailable marks a delegate-level failure (firewall daemon or
// policy store unreachable). The API layer maps it to a 500 response.
var ErrBackendUnavailable = errors.New("backend unavailable")
