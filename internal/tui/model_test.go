package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clinbook/clinbook/internal/api"
	"github.com/clinbook/clinbook/internal/auth"
	"github.com/clinbook/clinbook/internal/log"
	"github.com/clinbook/clinbook/internal/nav"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	logger := log.New(log.Config{Level: log.LevelError, Format: log.FormatText, Output: log.OutputStderr()})
	store := auth.NewMemoryStore()
	invalidator := auth.NewInvalidator(store, nil, logger)
	client := api.NewClient("http://127.0.0.1:0", store, invalidator, logger)
	resolver := auth.NewResolver(store, logger)
	selector := nav.NewSelector(nil)

	return New(client, store, resolver, invalidator, selector, logger)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// TestNewAppStartsOnBootScreen verifies no graph is mounted before the
// session resolve completes
func TestNewAppStartsOnBootScreen(t *testing.T) {
	app := newTestApp(t)

	if app.current() != viewBoot {
		t.Errorf("expected boot view, got %v", app.current())
	}
	if app.selector.Current() != nav.GraphBooting {
		t.Errorf("expected booting graph, got %v", app.selector.Current())
	}
	if !strings.Contains(app.View(), "Restoring") {
		t.Error("expected boot view to show the restore message")
	}
}

// TestBootMountsPublicGraph verifies a resolved public session lands on the
// clinic catalog
func TestBootMountsPublicGraph(t *testing.T) {
	app := newTestApp(t)

	app.Update(bootDoneMsg{group: auth.RoutePublic})

	if app.selector.Current() != nav.GraphPublic {
		t.Errorf("expected public graph, got %v", app.selector.Current())
	}
	if app.current() != viewClinics {
		t.Errorf("expected clinics view, got %v", app.current())
	}
}

// TestBootMountsAdminGraph verifies a resolved admin session lands on the
// overview
func TestBootMountsAdminGraph(t *testing.T) {
	app := newTestApp(t)

	app.Update(bootDoneMsg{group: auth.RouteAdmin})

	if app.selector.Current() != nav.GraphAdmin {
		t.Errorf("expected admin graph, got %v", app.selector.Current())
	}
	if app.current() != viewOverview {
		t.Errorf("expected overview view, got %v", app.current())
	}
}

// TestDuplicateBootIgnored verifies the first boot result wins
func TestDuplicateBootIgnored(t *testing.T) {
	app := newTestApp(t)

	app.Update(bootDoneMsg{group: auth.RouteUser})
	app.Update(bootDoneMsg{group: auth.RouteAdmin})

	if app.selector.Current() != nav.GraphUser {
		t.Errorf("expected user graph to survive, got %v", app.selector.Current())
	}
}

// TestLoginResetsNavigationStack verifies a login transition replaces the
// public stack instead of pushing onto it
func TestLoginResetsNavigationStack(t *testing.T) {
	app := newTestApp(t)
	app.Update(bootDoneMsg{group: auth.RoutePublic})

	app.clinics = []api.Clinic{{ID: 1, Name: "Vida"}}
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if app.current() != viewClinicDetail {
		t.Fatalf("expected clinic detail, got %v", app.current())
	}

	session := auth.Session{Token: "tok", Role: auth.RoleUser, Profile: &auth.Profile{Name: "Ana"}}
	app.Update(loginDoneMsg{session: session})

	if app.selector.Current() != nav.GraphUser {
		t.Errorf("expected user graph, got %v", app.selector.Current())
	}
	if len(app.stack) != 1 || app.current() != viewClinics {
		t.Errorf("expected stack reset to clinics, got %v", app.stack)
	}
	if app.selected != nil {
		t.Error("expected selected clinic to be dropped on transition")
	}
}

// TestAdminLoginMountsAdminGraph verifies the role decides the graph
func TestAdminLoginMountsAdminGraph(t *testing.T) {
	app := newTestApp(t)
	app.Update(bootDoneMsg{group: auth.RoutePublic})

	app.Update(loginDoneMsg{session: auth.Session{Token: "tok", Role: auth.RoleAdmin}})

	if app.selector.Current() != nav.GraphAdmin {
		t.Errorf("expected admin graph, got %v", app.selector.Current())
	}
	if app.current() != viewOverview {
		t.Errorf("expected overview, got %v", app.current())
	}
}

// TestInvalidationReturnsToPublic verifies a teardown resets the stack to
// the public graph
func TestInvalidationReturnsToPublic(t *testing.T) {
	app := newTestApp(t)
	app.Update(bootDoneMsg{group: auth.RouteUser})
	app.push(viewAppointments)

	app.Update(sessionInvalidatedMsg{reason: auth.ReasonUnauthorized})

	if app.selector.Current() != nav.GraphPublic {
		t.Errorf("expected public graph, got %v", app.selector.Current())
	}
	if len(app.stack) != 1 || app.current() != viewClinics {
		t.Errorf("expected stack reset to clinics, got %v", app.stack)
	}
	if app.toast != "" {
		t.Errorf("expected silent teardown on rejected credentials, got toast %q", app.toast)
	}
}

// TestInvalidationWhilePublicIsCoalesced verifies a second teardown signal
// does not disturb the already-public graph
func TestInvalidationWhilePublicIsCoalesced(t *testing.T) {
	app := newTestApp(t)
	app.Update(bootDoneMsg{group: auth.RoutePublic})

	app.Update(sessionInvalidatedMsg{reason: auth.ReasonUnauthorized})

	if app.selector.Current() != nav.GraphPublic {
		t.Errorf("expected public graph, got %v", app.selector.Current())
	}
}

// TestInvalidatorHookDeliversMessage verifies the hook-to-message bridge
func TestInvalidatorHookDeliversMessage(t *testing.T) {
	app := newTestApp(t)

	app.invalidator.Arm()
	if !app.invalidator.Invalidate(context.Background(), auth.ReasonLogout) {
		t.Fatal("expected invalidation to run")
	}

	msg := app.waitForInvalidation()()
	got, ok := msg.(sessionInvalidatedMsg)
	if !ok {
		t.Fatalf("expected sessionInvalidatedMsg, got %T", msg)
	}
	if got.reason != auth.ReasonLogout {
		t.Errorf("expected logout reason, got %v", got.reason)
	}
}

// TestLoginFormMounts verifies the sign-in shortcut from the public graph
func TestLoginFormMounts(t *testing.T) {
	app := newTestApp(t)
	app.Update(bootDoneMsg{group: auth.RoutePublic})

	app.Update(keyMsg("l"))

	if app.current() != viewLogin {
		t.Errorf("expected login view, got %v", app.current())
	}
	if app.form == nil {
		t.Error("expected a mounted form")
	}
	if app.formKind != formLogin {
		t.Errorf("expected login form kind, got %v", app.formKind)
	}
}

// TestEscPopsButNotPastGraphRoot verifies back navigation stops at the
// graph's root screen
func TestEscPopsButNotPastGraphRoot(t *testing.T) {
	app := newTestApp(t)
	app.Update(bootDoneMsg{group: auth.RouteUser})
	app.push(viewAppointments)

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.current() != viewClinics {
		t.Errorf("expected clinics after pop, got %v", app.current())
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.current() != viewClinics {
		t.Errorf("expected graph root to survive esc, got %v", app.current())
	}
}

// TestQuitKey verifies q quits outside forms
func TestQuitKey(t *testing.T) {
	app := newTestApp(t)
	app.Update(bootDoneMsg{group: auth.RoutePublic})

	_, cmd := app.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

// TestCursorMovement verifies list navigation stays in bounds
func TestCursorMovement(t *testing.T) {
	app := newTestApp(t)
	app.Update(bootDoneMsg{group: auth.RoutePublic})
	app.clinics = []api.Clinic{{ID: 1, Name: "Vida"}, {ID: 2, Name: "Bem Estar"}}

	app.Update(keyMsg("j"))
	if app.cursor != 1 {
		t.Errorf("expected cursor 1, got %d", app.cursor)
	}
	app.Update(keyMsg("j"))
	if app.cursor != 1 {
		t.Errorf("expected cursor clamped at 1, got %d", app.cursor)
	}
	app.Update(keyMsg("k"))
	app.Update(keyMsg("k"))
	if app.cursor != 0 {
		t.Errorf("expected cursor clamped at 0, got %d", app.cursor)
	}
}

// TestUnauthorizedLoadStaysSilent verifies a 401 during a data load does
// not surface an error toast
func TestUnauthorizedLoadStaysSilent(t *testing.T) {
	app := newTestApp(t)
	app.Update(bootDoneMsg{group: auth.RouteUser})

	_, cmd := app.Update(clinicsLoadedMsg{err: &api.Error{Kind: api.KindUnauthorized, Status: 401}})

	if cmd != nil {
		t.Error("expected no toast command for an authorization failure")
	}
	if app.toast != "" {
		t.Errorf("expected no toast, got %q", app.toast)
	}
}

// TestLoadErrorShowsToast verifies other failures do surface
func TestLoadErrorShowsToast(t *testing.T) {
	app := newTestApp(t)
	app.Update(bootDoneMsg{group: auth.RoutePublic})

	_, cmd := app.Update(clinicsLoadedMsg{err: &api.Error{Kind: api.KindServer, Status: 500}})
	if cmd == nil {
		t.Fatal("expected a toast command")
	}

	msg, ok := cmd().(toastMsg)
	if !ok {
		t.Fatalf("expected toastMsg, got %T", cmd())
	}
	if msg.text == "" {
		t.Error("expected a non-empty failure message")
	}
}

// TestOverviewLoadedRendered verifies the admin overview shows accounts
// and clinics once the concurrent fetch lands
func TestOverviewLoadedRendered(t *testing.T) {
	app := newTestApp(t)
	app.Update(bootDoneMsg{group: auth.RouteAdmin})

	app.Update(overviewLoadedMsg{overview: api.AdminOverview{
		Users:   []api.User{{ID: 1, Name: "Ana Souza", Email: "ana@example.com", Role: "admin"}},
		Clinics: []api.Clinic{{ID: 2, Name: "Clinica Vida"}},
	}})

	if app.overview == nil {
		t.Fatal("expected overview to be stored")
	}
	view := app.View()
	if !strings.Contains(view, "Ana Souza") {
		t.Error("expected account name in view")
	}
	if !strings.Contains(view, "Clinica Vida") {
		t.Error("expected clinic name in view")
	}
}

// TestClinicsLoadedRendered verifies the catalog shows loaded rows
func TestClinicsLoadedRendered(t *testing.T) {
	app := newTestApp(t)
	app.Update(bootDoneMsg{group: auth.RoutePublic})

	app.Update(clinicsLoadedMsg{clinics: []api.Clinic{{ID: 1, Name: "Clinica Vida", Specialty: "Cardiologia"}}})

	view := app.View()
	if !strings.Contains(view, "Clinica Vida") {
		t.Error("expected clinic name in view")
	}
	if !strings.Contains(view, "Cardiologia") {
		t.Error("expected specialty in view")
	}
}
