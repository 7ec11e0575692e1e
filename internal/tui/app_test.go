package tui

import (
	"testing"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/config"
	"github.com/balaji-matta18/spendbuddy/internal/session"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	store := session.NewStore(t.TempDir())
	store.Restore()
	client := api.NewClient("http://127.0.0.1:0", store)
	client.OnSessionExpired(store.Clear)

	a := NewApp(store, client, config.DefaultConfig())
	a.width, a.height = 100, 30
	a.restored = true
	return a
}

func TestApp_DropsSupersededFetchResponses(t *testing.T) {
	a := newTestApp(t)
	a.seq = 2
	a.expenses = []api.Expense{{ID: 2, Title: "Fresh"}}

	m, _ := a.Update(expensesMsg{seq: 1, txs: []api.Expense{{ID: 1, Title: "Stale"}}})
	got := m.(App)
	if len(got.expenses) != 1 || got.expenses[0].Title != "Fresh" {
		t.Fatalf("superseded response overwrote tab data: %+v", got.expenses)
	}

	m, _ = got.Update(expensesMsg{seq: 2, txs: []api.Expense{{ID: 3, Title: "Newer"}}})
	got = m.(App)
	if len(got.expenses) != 1 || got.expenses[0].Title != "Newer" {
		t.Fatalf("current response was not applied: %+v", got.expenses)
	}
}

func TestApp_SupersededErrorIsDiscarded(t *testing.T) {
	a := newTestApp(t)
	a.seq = 2

	m, _ := a.Update(dashboardMsg{seq: 1, err: api.ErrUnauthorized})
	got := m.(App)
	if got.onLogin() {
		t.Fatal("stale error message forced a login transition")
	}
	if got.notice != "" {
		t.Fatalf("stale error set notice %q", got.notice)
	}
}

func TestApp_ResponsesAfterLogoutAreDiscarded(t *testing.T) {
	a := newTestApp(t)
	a.seq = 1
	a.enterLogin("")

	m, _ := a.Update(dashboardMsg{seq: 1, recent: []api.Expense{{ID: 1, Title: "Late"}}})
	got := m.(App)
	if got.dashRecent != nil {
		t.Fatalf("in-flight response committed after logout: %+v", got.dashRecent)
	}
}

func TestApp_SessionExpiryInitializesLoginForm(t *testing.T) {
	a := newTestApp(t)
	a.seq = 1
	a.expenses = []api.Expense{{ID: 1, Title: "Old"}}

	m, cmd := a.Update(expensesMsg{seq: 1, err: api.ErrUnauthorized})
	got := m.(App)
	if !got.onLogin() {
		t.Fatal("expiry did not transition to the login screen")
	}
	if cmd == nil {
		t.Fatal("expiry transition returned no init cmd for the login form")
	}
	if got.expenses != nil {
		t.Fatalf("stale tab data survived the login transition: %+v", got.expenses)
	}
}
