package tui

import (
	"fmt"
	"strings"

	"github.com/clinbook/clinbook/internal/nav"
)

// View renders the visible screen of the current graph
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("ClinBook"))
	b.WriteString("\n")

	switch a.current() {
	case viewBoot:
		b.WriteString(a.spinner.View())
		b.WriteString(" Restoring your session...\n")
	case viewClinics:
		a.renderClinics(&b)
	case viewClinicDetail:
		a.renderClinicDetail(&b)
	case viewAppointments:
		a.renderAppointments(&b)
	case viewProfile:
		a.renderProfile(&b)
	case viewOverview:
		a.renderOverview(&b)
	case viewLogin, viewRegister, viewClinicForm, viewBookForm:
		if a.form != nil {
			b.WriteString(a.form.View())
		}
	}

	if a.loading && a.current() != viewBoot {
		b.WriteString("\n")
		b.WriteString(a.spinner.View())
		b.WriteString(" Loading...\n")
	}

	if a.toast != "" {
		b.WriteString("\n")
		if a.isError {
			b.WriteString(a.styles.Error.Render(a.toast))
		} else {
			b.WriteString(a.styles.Success.Render(a.toast))
		}
		b.WriteString("\n")
	}

	if a.form == nil {
		b.WriteString(a.helpLine())
	}
	return b.String()
}

func (a *App) renderClinics(b *strings.Builder) {
	b.WriteString(a.styles.Subtitle.Render("Clinics"))
	b.WriteString("\n")

	if len(a.clinics) == 0 && !a.loading {
		b.WriteString(a.styles.Muted.Render("No clinics registered yet."))
		b.WriteString("\n")
		return
	}

	for i, clinic := range a.clinics {
		line := clinic.Name
		if clinic.Specialty != "" {
			line += "  " + a.styles.Muted.Render(clinic.Specialty)
		}
		if i == a.cursor {
			line = a.styles.Selected.Render(line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func (a *App) renderClinicDetail(b *strings.Builder) {
	if a.selected == nil {
		b.WriteString(a.styles.Muted.Render("No clinic selected."))
		b.WriteString("\n")
		return
	}

	clinic := a.selected
	var detail strings.Builder
	detail.WriteString(a.styles.Status.Render(clinic.Name))
	detail.WriteString("\n\n")
	writeField(&detail, a, "Specialty", clinic.Specialty)
	writeField(&detail, a, "Address", clinic.Address)
	writeField(&detail, a, "Phone", clinic.Phone)
	writeField(&detail, a, "Email", clinic.Email)
	writeField(&detail, a, "CNPJ", clinic.CNPJ)
	b.WriteString(a.styles.Border.Render(detail.String()))
	b.WriteString("\n")
}

func writeField(b *strings.Builder, a *App, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(a.styles.Muted.Render(label + ": "))
	b.WriteString(value)
	b.WriteString("\n")
}

func (a *App) renderAppointments(b *strings.Builder) {
	b.WriteString(a.styles.Subtitle.Render("My appointments"))
	b.WriteString("\n")

	if len(a.appointments) == 0 && !a.loading {
		b.WriteString(a.styles.Muted.Render("No appointments booked."))
		b.WriteString("\n")
		return
	}

	for _, appt := range a.appointments {
		clinic := appt.Clinic
		if clinic == "" {
			clinic = fmt.Sprintf("clinic #%d", appt.ClinicID)
		}
		b.WriteString(fmt.Sprintf("%s %s  %s", appt.Date, appt.Time, clinic))
		if appt.Reason != "" {
			b.WriteString("  " + a.styles.Muted.Render(appt.Reason))
		}
		b.WriteString("\n")
	}
}

func (a *App) renderProfile(b *strings.Builder) {
	b.WriteString(a.styles.Subtitle.Render("Profile"))
	b.WriteString("\n")

	if a.profile == nil {
		return
	}

	var detail strings.Builder
	writeField(&detail, a, "Name", a.profile.Name)
	writeField(&detail, a, "Email", a.profile.Email)
	writeField(&detail, a, "Phone", a.profile.Phone)
	b.WriteString(a.styles.Border.Render(detail.String()))
	b.WriteString("\n")
}

func (a *App) renderOverview(b *strings.Builder) {
	b.WriteString(a.styles.Subtitle.Render("Administration"))
	b.WriteString("\n")

	if a.overview == nil {
		return
	}

	b.WriteString(a.styles.Status.Render(fmt.Sprintf("Accounts (%d)", len(a.overview.Users))))
	b.WriteString("\n")
	for i, user := range a.overview.Users {
		line := fmt.Sprintf("%s  %s", user.Name, a.styles.Muted.Render(user.Email))
		if user.Role != "" {
			line += "  " + a.styles.Muted.Render("["+user.Role+"]")
		}
		if i == a.cursor {
			line = a.styles.Selected.Render(line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Status.Render(fmt.Sprintf("Clinics (%d)", len(a.overview.Clinics))))
	b.WriteString("\n")
	for i, clinic := range a.overview.Clinics {
		line := clinic.Name
		if clinic.CNPJ != "" {
			line += "  " + a.styles.Muted.Render(clinic.CNPJ)
		}
		if i == a.cursor {
			line = a.styles.Selected.Render(line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// helpLine renders the shortcut hints for the current graph
func (a *App) helpLine() string {
	var hints []string

	switch a.selector.Current() {
	case nav.GraphPublic:
		hints = []string{"enter: view", "l: sign in", "r: create account", "c: register clinic"}
	case nav.GraphUser:
		hints = []string{"enter: view", "b: book", "m: appointments", "p: profile", "o: sign out"}
	case nav.GraphAdmin:
		hints = []string{"e: edit clinic", "c: register clinic", "x: remove account", "o: sign out"}
	}
	hints = append(hints, "esc: back", "q: quit")

	parts := make([]string, 0, len(hints))
	for _, hint := range hints {
		key, desc, _ := strings.Cut(hint, ": ")
		parts = append(parts, a.styles.Key.Render(key)+a.styles.KeyDesc.Render(": "+desc))
	}
	return a.styles.Help.Render(strings.Join(parts, "  "))
}
