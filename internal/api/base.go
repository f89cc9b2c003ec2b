// Package api maps domain operations on each entity to transport calls.
// Functions never retry and return transport errors unchanged.
package api

import (
	"context"
	"fmt"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
)

// Requester is the transport contract the repositories depend on.
type Requester interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// validateID rejects ids the server could never have assigned, before any
// network call.
func validateID(id int64, field string) error {
	if id <= 0 {
		return &apierrors.ValidationError{Field: field, Reason: "must be a positive id"}
	}
	return nil
}

func itemPath(collection string, id int64) string {
	return fmt.Sprintf("%s/%d", collection, id)
}
