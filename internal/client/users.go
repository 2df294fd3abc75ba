package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/taskhub/taskhub-client/internal/core/domain"
)

const apiPrefix = "/api/v1"

// UsersClient binds the user service endpoints.
type UsersClient struct {
	c *Client
}

func NewUsersClient(g *Gateway, baseURL string) *UsersClient {
	return &UsersClient{c: g.Client("users", baseURL)}
}

type registerRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. Registration alone does not establish a
// session; callers wanting one log in afterwards.
func (u *UsersClient) Register(ctx context.Context, email, fullName, password string) (*domain.User, error) {
	var user domain.User
	err := u.c.post(ctx, apiPrefix+"/auth/register", registerRequest{
		Email:    email,
		FullName: fullName,
		Password: password,
	}, &user)
	if err != nil {
		if se, ok := asStatus(err); ok && (se.Code == http.StatusConflict || se.Code == http.StatusBadRequest) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserExists, se.Message)
		}
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for an access token and the user record.
func (u *UsersClient) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	var result domain.LoginResult
	err := u.c.post(ctx, apiPrefix+"/auth/login", loginRequest{Email: email, Password: password}, &result)
	if err != nil {
		if IsUnauthorized(err) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return &result, nil
}

// CurrentUser fetches the account owning the current bearer token.
func (u *UsersClient) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := u.c.get(ctx, apiPrefix+"/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
