package api

import (
	"context"
	"net/http"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

const alertsPath = "/alerts"

// OldAlertsDays is the only age the bulk delete endpoint supports.
const OldAlertsDays = 7

// ListAlerts returns all alerts. GET /alerts
func ListAlerts(ctx context.Context, r Requester) ([]types.Alert, error) {
	var l types.List[types.Alert]
	if err := r.Do(ctx, http.MethodGet, alertsPath, nil, &l); err != nil {
		return nil, err
	}
	return l.Items(), nil
}

// GetAlert retrieves one alert. GET /alerts/{id}
func GetAlert(ctx context.Context, r Requester, id int64) (*types.Alert, error) {
	if err := validateID(id, "alertId"); err != nil {
		return nil, err
	}
	var a types.Alert
	if err := r.Do(ctx, http.MethodGet, itemPath(alertsPath, id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAlert posts a new alert. POST /alerts
func CreateAlert(ctx context.Context, r Requester, req types.AlertRequest) (*types.Alert, error) {
	var a types.Alert
	if err := r.Do(ctx, http.MethodPost, alertsPath, req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAlert removes one alert. DELETE /alerts/{id}
func DeleteAlert(ctx context.Context, r Requester, id int64) error {
	if err := validateID(id, "alertId"); err != nil {
		return err
	}
	return r.Do(ctx, http.MethodDelete, itemPath(alertsPath, id), nil, nil)
}

// DeleteAlertsOlderThan removes, server-side and in one call, every alert
// older than days. Only OldAlertsDays is served by the API.
// DELETE /alerts/older-than-7-days
func DeleteAlertsOlderThan(ctx context.Context, r Requester, days int) error {
	if days != OldAlertsDays {
		return &apierrors.ValidationError{Field: "days", Reason: "only 7 is supported"}
	}
	return r.Do(ctx, http.MethodDelete, alertsPath+"/older-than-7-days", nil, nil)
}
