package policy

import (
	"context"
	"fmt"

	dom "github.com/csuiter/screen-time-rewards/internal/domain/policy"

	"github.com/rs/zerolog/log"
)

// DaemonClient is the firewall-daemon delegate.
type DaemonClient interface {
	GetPolicy(ctx context.Context, id string) (any, error)
	EnablePolicy(ctx context.Context, id string) (any, error)
	DisablePolicy(ctx context.Context, id string) (any, error)
}

// StoreClient lists policy metadata from the local key-value store.
type StoreClient interface {
	ListPolicies(ctx context.Context) (string, error)
}

// Service implements the bridge operations: every call is a one-to-one
// proxy to exactly one delegate, nothing is cached or retried.
type Service struct {
	daemon DaemonClient
	store  StoreClient
}

// NewService creates a new policy service.
func NewService(daemon DaemonClient, store StoreClient) *Service {
	return &Service{
		daemon: daemon,
		store:  store,
	}
}

// GetPolicy returns the daemon's view of a policy untouched.
func (s *Service) GetPolicy(ctx context.Context, id string) (any, error) {
	return s.daemon.GetPolicy(ctx, id)
}

// TogglePolicy enables or disables a policy via the daemon and wraps the
// daemon's answer in the toggle payload. Transitions are logged with their
// real-world effect so an operator can see who lost or regained internet
// access from the service log alone.
func (s *Service) TogglePolicy(ctx context.Context, id string, action dom.Action) (*dom.ToggleResult, error) {
	var (
		result any
		err    error
	)
	switch action {
	case dom.ActionEnabled:
		result, err = s.daemon.EnablePolicy(ctx, id)
	case dom.ActionDisabled:
		result, err = s.daemon.DisablePolicy(ctx, id)
	default:
		return nil, fmt.Errorf("unknown toggle action %q", action)
	}
	if err != nil {
		log.Error().Err(err).
			Str("policy_id", id).
			Str("action", string(action)).
			Msg("Policy toggle failed")
		return nil, err
	}

	log.Info().
		Str("policy_id", id).
		Str("action", string(action)).
		Str("effect", action.Effect()).
		Msg("Policy toggled")

	return &dom.ToggleResult{
		Success:  true,
		Action:   action,
		PolicyID: id,
		Result:   result,
	}, nil
}

// ListPolicies returns the store's policy listing as raw text.
func (s *Service) ListPolicies(ctx context.Context) (string, error) {
	return s.store.ListPolicies(ctx)
}
