package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

const resourcesPath = "/resources"

// ListResourcesBySafePlace is the only resource list query the API offers.
// GET /resources?safePlaceId={id}
func ListResourcesBySafePlace(ctx context.Context, r Requester, safePlaceID int64) ([]types.Resource, error) {
	if err := validateID(safePlaceID, "safePlaceId"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("safePlaceId", strconv.FormatInt(safePlaceID, 10))

	var l types.List[types.Resource]
	if err := r.Do(ctx, http.MethodGet, resourcesPath+"?"+q.Encode(), nil, &l); err != nil {
		return nil, err
	}
	return l.Items(), nil
}

// GetResource retrieves one resource. GET /resources/{id}
func GetResource(ctx context.Context, r Requester, id int64) (*types.Resource, error) {
	if err := validateID(id, "resourceId"); err != nil {
		return nil, err
	}
	var res types.Resource
	if err := r.Do(ctx, http.MethodGet, itemPath(resourcesPath, id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateResource adds a resource to a shelter. POST /resources
func CreateResource(ctx context.Context, r Requester, req types.ResourceRequest) (*types.Resource, error) {
	if err := validateID(req.SafePlaceID, "safePlaceId"); err != nil {
		return nil, err
	}
	var res types.Resource
	if err := r.Do(ctx, http.MethodPost, resourcesPath, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateResource replaces a resource. PUT /resources/{id}
func UpdateResource(ctx context.Context, r Requester, id int64, req types.ResourceRequest) (*types.Resource, error) {
	if err := validateID(id, "resourceId"); err != nil {
		return nil, err
	}
	var res types.Resource
	if err := r.Do(ctx, http.MethodPut, itemPath(resourcesPath, id), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteResource removes a resource. DELETE /resources/{id}
func DeleteResource(ctx context.Context, r Requester, id int64) error {
	if err := validateID(id, "resourceId"); err != nil {
		return err
	}
	return r.Do(ctx, http.MethodDelete, itemPath(resourcesPath, id), nil, nil)
}

// ListResourceTypes returns resource type reference data. GET /resource-types
func ListResourceTypes(ctx context.Context, r Requester) ([]types.ResourceType, error) {
	var l types.List[types.ResourceType]
	if err := r.Do(ctx, http.MethodGet, "/resource-types", nil, &l); err != nil {
		return nil, err
	}
	return l.Items(), nil
}
