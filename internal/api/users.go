package api

import (
	"context"
	"net/http"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

// Login checks credentials. Success is decided by status code only; no
// token is returned or stored. POST /users/login
func Login(ctx context.Context, r Requester, req types.LoginRequest) error {
	return r.Do(ctx, http.MethodPost, "/users/login", req, nil)
}

// RegisterUser creates an account. POST /users
func RegisterUser(ctx context.Context, r Requester, req types.RegisterRequest) (*types.User, error) {
	var u types.User
	if err := r.Do(ctx, http.MethodPost, "/users", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
