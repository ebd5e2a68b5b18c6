package tui

import (
	"github.com/clinbook/clinbook/internal/api"
	"github.com/clinbook/clinbook/internal/auth"
)

// bootDoneMsg carries the route group resolved from the credential store
// during startup. No navigation graph is mounted before it arrives.
type bootDoneMsg struct {
	group auth.RouteGroup
}

// sessionInvalidatedMsg is delivered whenever the session invalidator fires,
// either for an explicit logout or a rejected credential.
type sessionInvalidatedMsg struct {
	reason auth.InvalidateReason
}

// loginDoneMsg carries the result of a login or registration attempt.
type loginDoneMsg struct {
	session auth.Session
	err     error
}

// clinicsLoadedMsg carries the clinic catalog.
type clinicsLoadedMsg struct {
	clinics []api.Clinic
	err     error
}

// appointmentsLoadedMsg carries the signed-in user's appointments.
type appointmentsLoadedMsg struct {
	appointments []api.Appointment
	err          error
}

// profileLoadedMsg carries the signed-in user's profile.
type profileLoadedMsg struct {
	user api.User
	err  error
}

// overviewLoadedMsg carries the admin overview.
type overviewLoadedMsg struct {
	overview api.AdminOverview
	err      error
}

// actionDoneMsg reports the outcome of a fire-and-forget operation such as
// booking an appointment or deleting a user.
type actionDoneMsg struct {
	message string
	refresh viewID
	err     error
}

// toastMsg shows a transient status line.
type toastMsg struct {
	text string
}

// clearToastMsg hides the status line again.
type clearToastMsg struct{}
