package api

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// accountRecord is the wire form of the admin user listing
type accountRecord struct {
	ID    int    `json:"id"`
	Name  string `json:"user_nome"`
	Email string `json:"user_email"`
	Role  string `json:"role"`
}

// Users lists all accounts. Admin endpoint.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var records []accountRecord
	if _, err := c.do(ctx, http.MethodGet, "/users/dados", nil, &records); err != nil {
		return nil, err
	}

	users := make([]User, 0, len(records))
	for _, r := range records {
		users = append(users, User{ID: r.ID, Name: r.Name, Email: r.Email, Role: r.Role})
	}
	return users, nil
}

// DeleteUser removes an account. Admin endpoint.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
	return err
}

// AdminOverview is the data backing the admin landing screen
type AdminOverview struct {
	Users   []User
	Clinics []Clinic
}

// Overview fetches users and clinics concurrently for the admin screen.
// A 401 from either call collapses into a single invalidation.
func (c *Client) Overview(ctx context.Context) (*AdminOverview, error) {
	var overview AdminOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := c.Users(gctx)
		if err != nil {
			return err
		}
		overview.Users = users
		return nil
	})
	g.Go(func() error {
		clinics, err := c.Clinics(gctx)
		if err != nil {
			return err
		}
		overview.Clinics = clinics
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
