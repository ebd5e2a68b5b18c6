package api

import (
	"context"
	"fmt"
	"net/http"
)

// Clinic is a registered clinic record
type Clinic struct {
	ID        int    `json:"id"`
	Name      string `json:"nome_clinica"`
	Specialty string `json:"especialidade_consulta,omitempty"`
	CNPJ      string `json:"cnpj_clinica,omitempty"`
	Email     string `json:"email_clinica,omitempty"`
	Phone     string `json:"telefone_clinica,omitempty"`
	Address   string `json:"endereco_clinica,omitempty"`
}

// ClinicForm is the registration/edit payload
type ClinicForm struct {
	Name      string `json:"nome_clinica"`
	Specialty string `json:"especialidade_consulta,omitempty"`
	CNPJ      string `json:"cnpj_clinica"`
	Email     string `json:"email_clinica"`
	Phone     string `json:"telefone_clinica"`
	Address   string `json:"endereco_clinica,omitempty"`
}

// Clinics lists all registered clinics. Public endpoint.
func (c *Client) Clinics(ctx context.Context) ([]Clinic, error) {
	var clinics []Clinic
	if _, err := c.do(ctx, http.MethodGet, "/clinica", nil, &clinics); err != nil {
		return nil, err
	}
	return clinics, nil
}

// Clinic fetches a single clinic by id
func (c *Client) Clinic(ctx context.Context, id int) (*Clinic, error) {
	var clinic Clinic
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/clinica/%d", id), nil, &clinic); err != nil {
		return nil, err
	}
	return &clinic, nil
}

// RegisterClinic creates a clinic record. Public endpoint: clinics
// register themselves before anyone is logged in.
func (c *Client) RegisterClinic(ctx context.Context, form ClinicForm) error {
	_, err := c.do(ctx, http.MethodPost, "/clinica", form, nil)
	return err
}

// UpdateClinic edits an existing clinic record
func (c *Client) UpdateClinic(ctx context.Context, id int, form ClinicForm) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/clinica/%d", id), form, nil)
	return err
}
