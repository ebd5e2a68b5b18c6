package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/clinbook/clinbook/internal/nav"
)

// onKey routes key presses. Forms swallow everything except ctrl+c; list
// screens get cursor movement plus per-graph shortcuts.
func (a *App) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	if a.form != nil {
		return a.updateForm(msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.pop()
		return a, nil
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down", "j":
		if a.cursor < a.cursorMax() {
			a.cursor++
		}
		return a, nil
	}

	switch a.selector.Current() {
	case nav.GraphPublic:
		return a.onPublicKey(msg)
	case nav.GraphUser:
		return a.onUserKey(msg)
	case nav.GraphAdmin:
		return a.onAdminKey(msg)
	}
	return a, nil
}

// cursorMax is the last selectable row on the current screen
func (a *App) cursorMax() int {
	switch a.current() {
	case viewClinics:
		return len(a.clinics) - 1
	case viewOverview:
		if a.overview == nil {
			return 0
		}
		// The cursor spans both overview tables; keys guard their own list.
		return max(len(a.overview.Users), len(a.overview.Clinics)) - 1
	}
	return 0
}

func (a *App) onPublicKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if a.current() == viewClinics && a.cursor < len(a.clinics) {
			a.selected = &a.clinics[a.cursor]
			a.push(viewClinicDetail)
		}
		return a, nil
	case "l":
		return a, a.mountLoginForm()
	case "r":
		return a, a.mountRegisterForm()
	case "c":
		return a, a.mountClinicForm(nil)
	}
	return a, nil
}

func (a *App) onUserKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if a.current() == viewClinics && a.cursor < len(a.clinics) {
			a.selected = &a.clinics[a.cursor]
			a.push(viewClinicDetail)
		}
		return a, nil
	case "b":
		return a, a.mountBookingForm()
	case "m":
		a.push(viewAppointments)
		a.loading = true
		return a, a.loadAppointmentsCmd()
	case "p":
		a.push(viewProfile)
		a.loading = true
		return a, a.loadProfileCmd()
	case "o":
		return a, a.logoutCmd()
	}
	return a, nil
}

func (a *App) onAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		return a, a.mountClinicForm(nil)
	case "e":
		if a.overview != nil && a.cursor < len(a.overview.Clinics) {
			return a, a.mountClinicForm(&a.overview.Clinics[a.cursor])
		}
		return a, nil
	case "x":
		if a.overview != nil && a.cursor < len(a.overview.Users) {
			a.loading = true
			return a, a.deleteUserCmd(a.overview.Users[a.cursor].ID)
		}
		return a, nil
	case "o":
		return a, a.logoutCmd()
	}
	return a, nil
}
