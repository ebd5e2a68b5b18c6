// Package tui implements the interactive terminal client.
//
// A single root model owns the navigation graph selector: no screen set is
// mounted until the persisted session has been resolved, and every graph
// transition replaces the whole view stack instead of pushing onto it.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/clinbook/clinbook/internal/api"
	"github.com/clinbook/clinbook/internal/auth"
	"github.com/clinbook/clinbook/internal/log"
	"github.com/clinbook/clinbook/internal/nav"
)

// viewID identifies a screen within the current navigation graph
type viewID int

const (
	viewBoot viewID = iota
	// shared by the public and user graphs
	viewClinics
	viewClinicDetail
	// user graph
	viewAppointments
	viewProfile
	// admin graph
	viewOverview
	// form screens, reachable from multiple graphs
	viewLogin
	viewRegister
	viewClinicForm
	viewBookForm
)

// formKind says which form is currently mounted
type formKind int

const (
	formNone formKind = iota
	formLogin
	formRegister
	formClinic
	formBook
)

// App is the root bubbletea model
type App struct {
	client      *api.Client
	store       auth.Store
	resolver    *auth.Resolver
	invalidator *auth.Invalidator
	selector    *nav.Selector
	logger      *log.Logger

	styles  Styles
	spinner spinner.Model
	width   int
	height  int

	// stack holds the screens of the current graph; stack[len-1] is shown.
	// Graph transitions replace it wholesale.
	stack   []viewID
	loading bool
	toast   string
	isError bool

	// invalidated bridges the invalidator hook into the message loop
	invalidated chan auth.InvalidateReason

	clinics      []api.Clinic
	cursor       int
	selected     *api.Clinic
	appointments []api.Appointment
	profile      *api.User
	overview     *api.AdminOverview

	form     *huh.Form
	formKind formKind
	login    loginValues
	register registerValues
	clinic   clinicValues
	booking  bookingValues
	editing  *api.Clinic
}

// New creates the root model and wires the invalidation hook into it
func New(client *api.Client, store auth.Store, resolver *auth.Resolver, invalidator *auth.Invalidator, selector *nav.Selector, logger *log.Logger) *App {
	if logger == nil {
		logger = log.DefaultLogger()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))

	app := &App{
		client:      client,
		store:       store,
		resolver:    resolver,
		invalidator: invalidator,
		selector:    selector,
		logger:      logger.With("component", "tui"),
		styles:      DefaultStyles(),
		spinner:     sp,
		stack:       []viewID{viewBoot},
		invalidated: make(chan auth.InvalidateReason, 8),
	}

	// The hook runs on whatever goroutine hit the 401; hand the reason to
	// the message loop without blocking it.
	invalidator.SetHook(func(reason auth.InvalidateReason) {
		select {
		case app.invalidated <- reason:
		default:
		}
	})

	return app
}

// Init starts the boot resolve. The model stays on the boot screen until
// bootDoneMsg arrives; there is no default graph.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.bootCmd(), a.waitForInvalidation())
}

// current returns the visible screen
func (a *App) current() viewID {
	return a.stack[len(a.stack)-1]
}

// push shows a screen on top of the current graph's stack
func (a *App) push(v viewID) {
	a.stack = append(a.stack, v)
}

// pop returns to the previous screen; the graph root cannot be popped
func (a *App) pop() {
	if len(a.stack) > 1 {
		a.stack = a.stack[:len(a.stack)-1]
	}
	a.form = nil
	a.formKind = formNone
	a.cursor = 0
}

// mountGraph replaces the navigation stack with the root screen of the
// given graph. Per-graph data from the previous graph is dropped.
func (a *App) mountGraph(g nav.Graph) tea.Cmd {
	a.form = nil
	a.formKind = formNone
	a.cursor = 0
	a.selected = nil
	a.appointments = nil
	a.profile = nil
	a.overview = nil

	switch g {
	case nav.GraphAdmin:
		a.stack = []viewID{viewOverview}
		a.loading = true
		return a.loadOverviewCmd()
	case nav.GraphPublic, nav.GraphUser:
		a.stack = []viewID{viewClinics}
		a.loading = true
		return a.loadClinicsCmd()
	default:
		a.stack = []viewID{viewBoot}
		return nil
	}
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case bootDoneMsg:
		if err := a.selector.Boot(msg.group); err != nil {
			// A duplicate boot result; the first one won.
			a.logger.Warn("duplicate boot ignored", "error", err.Error())
			return a, nil
		}
		return a, a.mountGraph(a.selector.Current())

	case sessionInvalidatedMsg:
		return a.onInvalidated(msg.reason)

	case loginDoneMsg:
		return a.onLoginDone(msg)

	case clinicsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			return a, a.failCmd(msg.err)
		}
		a.clinics = msg.clinics
		return a, nil

	case appointmentsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			return a, a.failCmd(msg.err)
		}
		a.appointments = msg.appointments
		return a, nil

	case profileLoadedMsg:
		a.loading = false
		if msg.err != nil {
			return a, a.failCmd(msg.err)
		}
		a.profile = &msg.user
		return a, nil

	case overviewLoadedMsg:
		a.loading = false
		if msg.err != nil {
			return a, a.failCmd(msg.err)
		}
		a.overview = &msg.overview
		return a, nil

	case actionDoneMsg:
		return a.onActionDone(msg)

	case toastMsg:
		a.toast = msg.text
		return a, clearToastAfter()

	case clearToastMsg:
		a.toast = ""
		a.isError = false
		return a, nil

	case tea.KeyMsg:
		return a.onKey(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

// onInvalidated reacts to the session invalidator firing. Concurrent 401s
// collapse inside the invalidator, so each message here is a real teardown,
// but the selector may already sit on the public graph when a logout and a
// 401 land close together.
func (a *App) onInvalidated(reason auth.InvalidateReason) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{a.waitForInvalidation()}

	if err := a.selector.Invalidated(); err != nil {
		a.logger.Debug("invalidation with no authenticated graph mounted", "reason", reason.String())
	} else {
		cmds = append(cmds, a.mountGraph(nav.GraphPublic))
	}

	// An explicit logout gets a confirmation; a rejected credential stays
	// silent so it doesn't contradict whatever the user was doing.
	if reason == auth.ReasonLogout {
		cmds = append(cmds, toast("You have been signed out."))
	}
	return a, tea.Batch(cmds...)
}

// onLoginDone handles the result of a login or registration form
func (a *App) onLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		return a, a.failCmd(msg.err)
	}

	if err := a.selector.LoginSucceeded(msg.session.Role); err != nil {
		// The platform issued a token but no recognized role; the session
		// is persisted yet resolves to the public routes.
		a.logger.Warn("login without a routable role", "error", err.Error())
		a.pop()
		return a, toast("Signed in, but your account has no role assigned yet.")
	}

	name := ""
	if msg.session.Profile != nil {
		name = msg.session.Profile.Name
	}
	return a, tea.Batch(a.mountGraph(a.selector.Current()), toast(welcomeText(name)))
}

// onActionDone handles fire-and-forget operation results
func (a *App) onActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	a.pop()
	if msg.err != nil {
		return a, a.failCmd(msg.err)
	}

	cmds := []tea.Cmd{toast(msg.message)}
	switch msg.refresh {
	case viewClinics:
		a.loading = true
		cmds = append(cmds, a.loadClinicsCmd())
	case viewAppointments:
		a.loading = true
		cmds = append(cmds, a.loadAppointmentsCmd())
	case viewOverview:
		a.loading = true
		cmds = append(cmds, a.loadOverviewCmd())
	}
	return a, tea.Batch(cmds...)
}

// failCmd surfaces an operation failure. Authorization failures stay
// silent here: the invalidator already took the session down and the
// graph reset is confirmation enough.
func (a *App) failCmd(err error) tea.Cmd {
	if api.IsUnauthorized(err) {
		return nil
	}
	a.isError = true
	return toast(api.UserMessage(err))
}

func welcomeText(name string) string {
	if name == "" {
		return "Welcome back."
	}
	return "Welcome back, " + name + "."
}

// bootCmd resolves the persisted session off the message loop
func (a *App) bootCmd() tea.Cmd {
	return func() tea.Msg {
		group := a.resolver.Resolve(context.Background())
		if group != auth.RoutePublic {
			// A restored session must still be revocable by a 401.
			a.invalidator.Arm()
		}
		return bootDoneMsg{group: group}
	}
}

// waitForInvalidation blocks on the hook channel; re-issued after each
// delivery so the bridge stays open for the next session
func (a *App) waitForInvalidation() tea.Cmd {
	return func() tea.Msg {
		return sessionInvalidatedMsg{reason: <-a.invalidated}
	}
}
