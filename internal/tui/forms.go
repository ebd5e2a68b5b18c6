package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/clinbook/clinbook/internal/api"
)

type loginValues struct {
	Email    string
	Password string
}

type registerValues struct {
	Name      string
	Email     string
	Password  string
	CPF       string
	Phone     string
	BirthDate string
	Gender    string
}

func (v registerValues) payload() api.NewUser {
	return api.NewUser{
		Name:      v.Name,
		Email:     v.Email,
		Password:  v.Password,
		CPF:       v.CPF,
		Phone:     v.Phone,
		BirthDate: v.BirthDate,
		Gender:    v.Gender,
	}
}

type clinicValues struct {
	Name      string
	CNPJ      string
	Email     string
	Phone     string
	Address   string
	Specialty string
}

func (v clinicValues) payload() api.ClinicForm {
	return api.ClinicForm{
		Name:      v.Name,
		CNPJ:      v.CNPJ,
		Email:     v.Email,
		Phone:     v.Phone,
		Address:   v.Address,
		Specialty: v.Specialty,
	}
}

type bookingValues struct {
	ClinicID string
	Date     string
	Time     string
	Reason   string
}

func (v bookingValues) payload() (api.AppointmentRequest, error) {
	id, err := strconv.Atoi(v.ClinicID)
	if err != nil {
		return api.AppointmentRequest{}, fmt.Errorf("invalid clinic selection %q", v.ClinicID)
	}
	return api.AppointmentRequest{
		ClinicID: id,
		Date:     v.Date,
		Time:     v.Time,
		Reason:   v.Reason,
	}, nil
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func (a *App) mountLoginForm() tea.Cmd {
	a.login = loginValues{}
	a.formKind = formLogin
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&a.login.Email).
				Validate(notEmpty("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&a.login.Password).
				Validate(notEmpty("password")),
		),
	)
	a.push(viewLogin)
	return a.form.Init()
}

func (a *App) mountRegisterForm() tea.Cmd {
	a.register = registerValues{}
	a.formKind = formRegister
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&a.register.Name).
				Validate(notEmpty("name")),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&a.register.Email).
				Validate(notEmpty("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&a.register.Password).
				Validate(notEmpty("password")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("CPF").
				Placeholder("000.000.000-00").
				Value(&a.register.CPF),
			huh.NewInput().
				Title("Phone").
				Value(&a.register.Phone),
			huh.NewInput().
				Title("Birth date").
				Placeholder("1990-01-31").
				Value(&a.register.BirthDate),
			huh.NewSelect[string]().
				Title("Gender").
				Options(
					huh.NewOption("Prefer not to say", ""),
					huh.NewOption("Female", "feminino"),
					huh.NewOption("Male", "masculino"),
					huh.NewOption("Other", "outro"),
				).
				Value(&a.register.Gender),
		),
	)
	a.push(viewRegister)
	return a.form.Init()
}

// mountClinicForm shows the clinic registration form, prefilled when a
// clinic record is being edited
func (a *App) mountClinicForm(editing *api.Clinic) tea.Cmd {
	a.editing = editing
	a.clinic = clinicValues{}
	if editing != nil {
		a.clinic = clinicValues{
			Name:      editing.Name,
			CNPJ:      editing.CNPJ,
			Email:     editing.Email,
			Phone:     editing.Phone,
			Address:   editing.Address,
			Specialty: editing.Specialty,
		}
	}

	a.formKind = formClinic
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Clinic name").
				Value(&a.clinic.Name).
				Validate(notEmpty("clinic name")),
			huh.NewInput().
				Title("CNPJ").
				Placeholder("00.000.000/0000-00").
				Value(&a.clinic.CNPJ).
				Validate(notEmpty("CNPJ")),
			huh.NewInput().
				Title("Email").
				Value(&a.clinic.Email).
				Validate(notEmpty("email")),
			huh.NewInput().
				Title("Phone").
				Value(&a.clinic.Phone),
			huh.NewInput().
				Title("Address").
				Value(&a.clinic.Address),
			huh.NewInput().
				Title("Specialty").
				Placeholder("Cardiologia").
				Value(&a.clinic.Specialty),
		),
	)
	a.push(viewClinicForm)
	return a.form.Init()
}

func (a *App) mountBookingForm() tea.Cmd {
	a.booking = bookingValues{}
	if a.selected != nil {
		a.booking.ClinicID = strconv.Itoa(a.selected.ID)
	}

	options := make([]huh.Option[string], 0, len(a.clinics))
	for _, clinic := range a.clinics {
		label := clinic.Name
		if clinic.Specialty != "" {
			label += " (" + clinic.Specialty + ")"
		}
		options = append(options, huh.NewOption(label, strconv.Itoa(clinic.ID)))
	}

	a.formKind = formBook
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Clinic").
				Options(options...).
				Value(&a.booking.ClinicID),
			huh.NewInput().
				Title("Date").
				Placeholder("2026-09-15").
				Value(&a.booking.Date).
				Validate(notEmpty("date")),
			huh.NewInput().
				Title("Time").
				Placeholder("14:30").
				Value(&a.booking.Time).
				Validate(notEmpty("time")),
			huh.NewText().
				Title("Reason").
				Placeholder("What brings you in?").
				Value(&a.booking.Reason),
		),
	)
	a.push(viewBookForm)
	return a.form.Init()
}

// updateForm feeds a message to the mounted form and submits on completion
func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a.submitForm()
	case huh.StateAborted:
		a.pop()
		return a, nil
	}
	return a, cmd
}

func (a *App) submitForm() (tea.Model, tea.Cmd) {
	kind := a.formKind
	a.loading = true

	switch kind {
	case formLogin:
		vals := a.login
		a.pop()
		return a, a.loginCmd(vals.Email, vals.Password)
	case formRegister:
		vals := a.register
		a.pop()
		return a, a.registerCmd(vals)
	case formClinic:
		vals := a.clinic
		editing := a.editing
		a.editing = nil
		if editing != nil {
			return a, a.updateClinicCmd(editing.ID, vals)
		}
		return a, a.registerClinicCmd(vals)
	case formBook:
		vals := a.booking
		return a, a.bookAppointmentCmd(vals)
	}

	a.loading = false
	a.pop()
	return a, nil
}
