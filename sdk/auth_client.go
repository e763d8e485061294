package sdk

import (
	"context"
	"net/http"

	"github.com/shopnext/shopnext/sdk/internal/restmachinery"
)

// AuthClient is the specialized client for the auth service's signup and
// login endpoints.
type AuthClient interface {
	// Signup submits signup credentials and returns the service's
	// structured response. An *ErrTransport is returned if no structured
	// response could be obtained.
	Signup(ctx context.Context, credentials SignupCredentials) (AuthResponse, error)
	// Login submits login credentials and returns the service's structured
	// response. An *ErrTransport is returned if no structured response
	// could be obtained.
	Login(ctx context.Context, credentials LoginCredentials) (AuthResponse, error)
}

type authClient struct {
	*restmachinery.BaseClient
}

// NewAuthClient returns a specialized client for the auth service's signup
// and login endpoints.
func NewAuthClient(apiAddress string, allowInsecure bool) AuthClient {
	return &authClient{
		BaseClient: restmachinery.NewBaseClient(apiAddress, allowInsecure),
	}
}

func (a *authClient) Signup(
	_ context.Context,
	credentials SignupCredentials,
) (AuthResponse, error) {
	resp := AuthResponse{}
	if err := a.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:     http.MethodPost,
			Path:       "auth/signup",
			ReqBodyObj: credentials,
			RespObj:    &resp,
		},
	); err != nil {
		return AuthResponse{}, &ErrTransport{Cause: err}
	}
	return resp, nil
}

func (a *authClient) Login(
	_ context.Context,
	credentials LoginCredentials,
) (AuthResponse, error) {
	resp := AuthResponse{}
	if err := a.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:     http.MethodPost,
			Path:       "auth/login",
			ReqBodyObj: credentials,
			RespObj:    &resp,
		},
	); err != nil {
		return AuthResponse{}, &ErrTransport{Cause: err}
	}
	return resp, nil
}
