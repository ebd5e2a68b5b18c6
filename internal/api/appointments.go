package api

import (
	"context"
	"net/http"
)

// AppointmentRequest books a consultation at a clinic
type AppointmentRequest struct {
	ClinicID int    `json:"clinicaId"`
	Date     string `json:"data_consulta"`
	Time     string `json:"horario_consulta"`
	Reason   string `json:"motivo,omitempty"`
}

// Appointment is a booked consultation
type Appointment struct {
	ID       int    `json:"id"`
	ClinicID int    `json:"clinicaId"`
	Clinic   string `json:"nome_clinica,omitempty"`
	Date     string `json:"data_consulta"`
	Time     string `json:"horario_consulta"`
	Reason   string `json:"motivo,omitempty"`
}

// BookAppointment books a consultation. Authorized endpoint.
func (c *Client) BookAppointment(ctx context.Context, req AppointmentRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/marcar-consulta", req, nil)
	return err
}

// MyAppointments lists the caller's booked consultations
func (c *Client) MyAppointments(ctx context.Context) ([]Appointment, error) {
	var appts []Appointment
	if _, err := c.do(ctx, http.MethodGet, "/consultas", nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
