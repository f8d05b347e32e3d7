package service

import (
	"errors"
	"fmt"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/query"
)

// publicResult turns a caller-independent query result into a value.
func publicResult[T any](res query.Result[T]) (T, error) {
	v, err := res.Unwrap()
	if errors.Is(err, query.ErrDisabled) {
		return v, domain.ErrBackendUnavailable
	}
	return v, err
}

// callerResult turns an identity-scoped query result into a value. A
// disabled query means the caller is anonymous or the backend is down.
func callerResult[T any](id domain.Identity, res query.Result[T]) (T, error) {
	v, err := res.Unwrap()
	if errors.Is(err, query.ErrDisabled) {
		if !id.Authenticated() {
			return v, domain.ErrNotAuthenticated
		}
		return v, domain.ErrBackendUnavailable
	}
	return v, err
}

func requireIdentity(id domain.Identity) error {
	if !id.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	return nil
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
