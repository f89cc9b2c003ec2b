package api

import (
	"context"
	"net/http"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

const safePlacesPath = "/safe-places"

// ListSafePlaces returns all shelters. GET /safe-places
func ListSafePlaces(ctx context.Context, r Requester) ([]types.SafePlace, error) {
	var l types.List[types.SafePlace]
	if err := r.Do(ctx, http.MethodGet, safePlacesPath, nil, &l); err != nil {
		return nil, err
	}
	return l.Items(), nil
}

// GetSafePlace retrieves one shelter. GET /safe-places/{id}
func GetSafePlace(ctx context.Context, r Requester, id int64) (*types.SafePlace, error) {
	if err := validateID(id, "safePlaceId"); err != nil {
		return nil, err
	}
	var p types.SafePlace
	if err := r.Do(ctx, http.MethodGet, itemPath(safePlacesPath, id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateSafePlace registers a shelter. POST /safe-places
func CreateSafePlace(ctx context.Context, r Requester, req types.SafePlaceRequest) (*types.SafePlace, error) {
	var p types.SafePlace
	if err := r.Do(ctx, http.MethodPost, safePlacesPath, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateSafePlace replaces a shelter. PUT /safe-places/{id}
func UpdateSafePlace(ctx context.Context, r Requester, id int64, req types.SafePlaceRequest) (*types.SafePlace, error) {
	if err := validateID(id, "safePlaceId"); err != nil {
		return nil, err
	}
	var p types.SafePlace
	if err := r.Do(ctx, http.MethodPut, itemPath(safePlacesPath, id), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteSafePlace removes a shelter. Resources still referencing it are the
// server's concern. DELETE /safe-places/{id}
func DeleteSafePlace(ctx context.Context, r Requester, id int64) error {
	if err := validateID(id, "safePlaceId"); err != nil {
		return err
	}
	return r.Do(ctx, http.MethodDelete, itemPath(safePlacesPath, id), nil, nil)
}
