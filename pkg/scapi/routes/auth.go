package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scapi/services"
	"github.com/quatton/scitech/pkg/scapi/services/auth"
)

func RegisterAuth(api huma.API, svcs *services.Services) {
	huma.Register(api, huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in",
		Description: "Exchanges the operator credentials for a bearer token",
		Tags:        []string{TagAuth.String()},
	}, func(ctx context.Context, input *schemas.LoginRequest) (*schemas.LoginResponse, error) {
		token, err := svcs.Auth.Login(ctx, input.Body.Email, input.Body.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return nil, huma.Error401Unauthorized("Invalid credentials")
			}
			return nil, huma.Error500InternalServerError("failed to issue token", err)
		}

		resp := &schemas.LoginResponse{}
		resp.Body.Token = token
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "auth-logout",
		Method:        http.MethodPost,
		Path:          "/auth/logout",
		Summary:       "Log out",
		Description:   "Revokes the presented bearer token",
		Tags:          []string{TagAuth.String()},
		Security:      BearerAuth,
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *struct{}) (*struct{}, error) {
		user := svcs.IAM.Get(ctx)
		if user == nil {
			return nil, huma.Error401Unauthorized("Authentication required")
		}
		if err := svcs.Auth.Revoke(ctx, user); err != nil {
			return nil, huma.Error500InternalServerError("failed to revoke token", err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "auth-me",
		Method:      http.MethodGet,
		Path:        "/auth/me",
		Summary:     "Get current principal",
		Description: "Returns the operator the bearer token was issued to",
		Tags:        []string{TagAuth.String()},
		Security:    BearerAuth,
	}, func(ctx context.Context, input *struct{}) (*schemas.MeResponse, error) {
		user := svcs.IAM.Get(ctx)
		if user == nil {
			return nil, huma.Error401Unauthorized("Authentication required")
		}
		resp := &schemas.MeResponse{}
		resp.Body.User = *user
		return resp, nil
	})
}
