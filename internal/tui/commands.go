package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clinbook/clinbook/internal/auth"
)

// toastDuration is how long a status line stays visible
const toastDuration = 4 * time.Second

func toast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}

func clearToastAfter() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return clearToastMsg{} })
}

func (a *App) loadClinicsCmd() tea.Cmd {
	return func() tea.Msg {
		clinics, err := a.client.Clinics(context.Background())
		return clinicsLoadedMsg{clinics: clinics, err: err}
	}
}

func (a *App) loadAppointmentsCmd() tea.Cmd {
	return func() tea.Msg {
		appts, err := a.client.MyAppointments(context.Background())
		return appointmentsLoadedMsg{appointments: appts, err: err}
	}
}

func (a *App) loadProfileCmd() tea.Cmd {
	return func() tea.Msg {
		user, err := a.client.Profile(context.Background())
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		return profileLoadedMsg{user: *user}
	}
}

func (a *App) loadOverviewCmd() tea.Cmd {
	return func() tea.Msg {
		overview, err := a.client.Overview(context.Background())
		if err != nil {
			return overviewLoadedMsg{err: err}
		}
		return overviewLoadedMsg{overview: *overview}
	}
}

func (a *App) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := a.client.Login(ctx, email, password); err != nil {
			return loginDoneMsg{err: err}
		}
		session, err := a.store.Load(ctx)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{session: session}
	}
}

func (a *App) registerCmd(vals registerValues) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		_, err := a.client.Register(ctx, vals.payload())
		if err != nil {
			return loginDoneMsg{err: err}
		}
		session, err := a.store.Load(ctx)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{session: session}
	}
}

// logoutCmd tears the session down. The resulting graph change arrives
// through the invalidation channel, not from this command.
func (a *App) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		a.invalidator.Invalidate(context.Background(), auth.ReasonLogout)
		return nil
	}
}

func (a *App) registerClinicCmd(vals clinicValues) tea.Cmd {
	return func() tea.Msg {
		err := a.client.RegisterClinic(context.Background(), vals.payload())
		return actionDoneMsg{message: "Clinic registered.", refresh: a.clinicRefreshTarget(), err: err}
	}
}

func (a *App) updateClinicCmd(id int, vals clinicValues) tea.Cmd {
	return func() tea.Msg {
		err := a.client.UpdateClinic(context.Background(), id, vals.payload())
		return actionDoneMsg{message: "Clinic updated.", refresh: a.clinicRefreshTarget(), err: err}
	}
}

func (a *App) bookAppointmentCmd(vals bookingValues) tea.Cmd {
	return func() tea.Msg {
		req, err := vals.payload()
		if err != nil {
			return actionDoneMsg{err: err}
		}
		if err := a.client.BookAppointment(context.Background(), req); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{message: "Appointment booked.", refresh: viewAppointments}
	}
}

func (a *App) deleteUserCmd(id int) tea.Cmd {
	return func() tea.Msg {
		err := a.client.DeleteUser(context.Background(), id)
		return actionDoneMsg{message: "Account removed.", refresh: viewOverview, err: err}
	}
}

// clinicRefreshTarget picks which screen to reload after a clinic change:
// the admin overview when the admin graph is mounted, the catalog otherwise
func (a *App) clinicRefreshTarget() viewID {
	if a.stack[0] == viewOverview {
		return viewOverview
	}
	return viewClinics
}
