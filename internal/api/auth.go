package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/clinbook/clinbook/internal/auth"
)

// User is the account record returned by login and the admin listing
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// loginRequest matches the platform login contract
type loginRequest struct {
	Email    string `json:"user_email"`
	Password string `json:"user_senha"`
}

// LoginResponse is the successful login payload
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// NewUser is the registration payload
type NewUser struct {
	Name      string `json:"user_nome"`
	Email     string `json:"user_email"`
	Password  string `json:"user_senha"`
	BirthDate string `json:"user_data_nascimento,omitempty"`
	Gender    string `json:"user_genero,omitempty"`
	Phone     string `json:"user_telefone,omitempty"`
	CPF       string `json:"user_cpf,omitempty"`
}

// profileRecord is the wire form of GET /users/profile
type profileRecord struct {
	ID    int    `json:"id"`
	Name  string `json:"user_nome"`
	Email string `json:"user_email"`
	Phone string `json:"user_telefone"`
}

// ProfileUpdate is the payload for editing the caller's own record
type ProfileUpdate struct {
	Name  string `json:"user_nome"`
	Email string `json:"user_email"`
	Phone string `json:"user_telefone,omitempty"`
}

// Login authenticates against the platform.
//
// On success the token, role, and profile are persisted as one unit and
// the invalidator is re-armed, establishing a fresh session.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if _, err := c.do(ctx, http.MethodPost, "/users/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken == "" {
		return nil, &Error{Kind: KindDecode, Cause: fmt.Errorf("login response missing access token")}
	}

	session := sessionFromLogin(&resp)
	if err := c.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("login succeeded but session could not be persisted: %w", err)
	}
	if c.invalidator != nil {
		c.invalidator.Arm()
	}

	c.logger.InfoContext(ctx, "login succeeded", "role", resp.User.Role)
	return &resp, nil
}

// Register creates an account, then logs in transparently
func (c *Client) Register(ctx context.Context, nu NewUser) (*LoginResponse, error) {
	if _, err := c.do(ctx, http.MethodPost, "/users", nu, nil); err != nil {
		return nil, err
	}

	resp, err := c.Login(ctx, nu.Email, nu.Password)
	if err != nil {
		return nil, fmt.Errorf("registration succeeded but login failed: %w", err)
	}
	return resp, nil
}

// Profile fetches the current user's record and refreshes the cached copy.
//
// The cached profile is only rewritten when the token used for this call
// still matches the stored one: a logout that raced this request must not
// be resurrected by its late success response.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var rec profileRecord
	tokenUsed, err := c.do(ctx, http.MethodGet, "/users/profile", nil, &rec)
	if err != nil {
		return nil, err
	}

	user := &User{ID: rec.ID, Name: rec.Name, Email: rec.Email, Phone: rec.Phone}
	c.refreshProfile(ctx, tokenUsed, user)
	return user, nil
}

// UpdateProfile edits the caller's own record
func (c *Client) UpdateProfile(ctx context.Context, id int, upd ProfileUpdate) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", id), upd, nil)
	return err
}

// refreshProfile rewrites the cached profile under the stale-session guard
func (c *Client) refreshProfile(ctx context.Context, tokenUsed string, user *User) {
	session, err := c.store.Load(ctx)
	if err != nil || session.Token == "" || session.Token != tokenUsed {
		c.logger.DebugContext(ctx, "stale profile response dropped")
		return
	}

	session.Profile = profileOf(user)
	if err := c.store.Save(ctx, session); err != nil {
		c.logger.WarnContext(ctx, "profile cache refresh failed", "error", err.Error())
	}
}

// sessionFromLogin builds the persisted session from a login response
func sessionFromLogin(resp *LoginResponse) auth.Session {
	return auth.Session{
		Token:   resp.AccessToken,
		Role:    auth.ParseRole(resp.User.Role),
		Profile: profileOf(&resp.User),
	}
}

func profileOf(u *User) *auth.Profile {
	return &auth.Profile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}
