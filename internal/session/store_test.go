package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/balaji-matta18/spendbuddy/internal/api"
)

func writeState(t *testing.T, dir, token, profile string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, tokenFile), []byte(token), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, profileFile), []byte(profile), 0o600); err != nil {
		t.Fatal(err)
	}
}

func authServer(t *testing.T, response string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStore_StartsLoading(t *testing.T) {
	s := NewStore(t.TempDir())
	if got := s.State(); got != StateLoading {
		t.Fatalf("initial state = %v, want StateLoading", got)
	}
}

func TestRestore_ActivatesValidState(t *testing.T) {
	dir := t.TempDir()
	writeState(t, dir, "tok123", `{"id":7,"username":"asha","email":"a@b.c","monthStartDay":5}`)

	s := NewStore(dir)
	s.Restore()

	if got := s.State(); got != StateActive {
		t.Fatalf("state = %v, want StateActive", got)
	}
	sess, ok := s.Current()
	if !ok {
		t.Fatal("Current() not ok after valid restore")
	}
	if sess.Username != "asha" || sess.MonthStartDay != 5 {
		t.Errorf("session = %+v, want asha with start day 5", sess)
	}
	if s.Token() != "tok123" {
		t.Errorf("Token() = %q, want tok123", s.Token())
	}
}

func TestRestore_MissingTokenIsAnonymous(t *testing.T) {
	s := NewStore(t.TempDir())
	s.Restore()
	if got := s.State(); got != StateAnonymous {
		t.Fatalf("state = %v, want StateAnonymous", got)
	}
}

func TestRestore_UndefinedProfileClearsStorage(t *testing.T) {
	dir := t.TempDir()
	writeState(t, dir, "tok123", "undefined")

	s := NewStore(dir)
	s.Restore()

	if got := s.State(); got != StateAnonymous {
		t.Fatalf("state = %v, want StateAnonymous", got)
	}
	if _, err := os.Stat(filepath.Join(dir, tokenFile)); !os.IsNotExist(err) {
		t.Error("token file survived a corrupt restore")
	}
	if _, err := os.Stat(filepath.Join(dir, profileFile)); !os.IsNotExist(err) {
		t.Error("profile file survived a corrupt restore")
	}
}

func TestRestore_MalformedJSONClearsStorage(t *testing.T) {
	dir := t.TempDir()
	writeState(t, dir, "tok123", `{"id":`)

	s := NewStore(dir)
	s.Restore()

	if got := s.State(); got != StateAnonymous {
		t.Fatalf("state = %v, want StateAnonymous", got)
	}
	if _, err := os.Stat(filepath.Join(dir, profileFile)); !os.IsNotExist(err) {
		t.Error("malformed profile was not removed")
	}
}

func TestSignIn_PersistsAndActivates(t *testing.T) {
	srv := authServer(t, `{"id":1,"username":"asha","email":"a@b.c","token":"fresh","monthStartDay":10}`)
	dir := t.TempDir()
	s := NewStore(dir)
	s.Restore()

	c := api.NewClient(srv.URL, s)
	sess, err := s.SignIn(context.Background(), c, "a@b.c", "pw")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if sess.MonthStartDay != 10 {
		t.Errorf("MonthStartDay = %d, want 10", sess.MonthStartDay)
	}
	if got := s.State(); got != StateActive {
		t.Fatalf("state = %v, want StateActive", got)
	}

	token, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if err != nil {
		t.Fatalf("token not persisted: %v", err)
	}
	if string(token) != "fresh" {
		t.Errorf("persisted token = %q, want fresh", token)
	}

	restored := NewStore(dir)
	restored.Restore()
	if got := restored.State(); got != StateActive {
		t.Fatalf("fresh store after restart = %v, want StateActive", got)
	}
}

func TestSignIn_MissingTokenIsHardError(t *testing.T) {
	srv := authServer(t, `{"id":1,"username":"asha","email":"a@b.c"}`)
	s := NewStore(t.TempDir())
	s.Restore()

	c := api.NewClient(srv.URL, s)
	_, err := s.SignIn(context.Background(), c, "a@b.c", "pw")
	if !errors.Is(err, ErrNoToken) {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}
	if got := s.State(); got != StateAnonymous {
		t.Fatalf("state after token-less signin = %v, want previous state unchanged", got)
	}
}

func TestSignIn_FailureLeavesExistingSession(t *testing.T) {
	dir := t.TempDir()
	writeState(t, dir, "oldtok", `{"id":1,"username":"asha","email":"a@b.c","monthStartDay":1}`)
	s := NewStore(dir)
	s.Restore()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, nil)
	if _, err := s.SignIn(context.Background(), c, "a@b.c", "wrong"); err == nil {
		t.Fatal("SignIn with rejected credentials returned nil error")
	}
	if got := s.State(); got != StateActive {
		t.Fatalf("state = %v, want existing session untouched", got)
	}
	if s.Token() != "oldtok" {
		t.Errorf("Token() = %q, want oldtok preserved", s.Token())
	}
}

func TestSignUp_NoTokenMeansLoginRequired(t *testing.T) {
	srv := authServer(t, `{"id":2,"username":"new","email":"n@b.c"}`)
	s := NewStore(t.TempDir())
	s.Restore()

	c := api.NewClient(srv.URL, s)
	_, err := s.SignUp(context.Background(), c, "new", "n@b.c", "pw")
	if !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("err = %v, want ErrLoginRequired", err)
	}
	if got := s.State(); got != StateAnonymous {
		t.Fatalf("state = %v, want StateAnonymous", got)
	}
}

func TestSignUp_WithTokenDefaultsStartDay(t *testing.T) {
	srv := authServer(t, `{"id":2,"username":"new","email":"n@b.c","token":"fresh"}`)
	s := NewStore(t.TempDir())
	s.Restore()

	c := api.NewClient(srv.URL, s)
	sess, err := s.SignUp(context.Background(), c, "new", "n@b.c", "pw")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if sess.MonthStartDay != 1 {
		t.Fatalf("MonthStartDay = %d, want default 1", sess.MonthStartDay)
	}
}

func TestSignOut_ClearsStorageAndMemory(t *testing.T) {
	dir := t.TempDir()
	writeState(t, dir, "tok", `{"id":1,"username":"asha","email":"a@b.c","monthStartDay":1}`)
	s := NewStore(dir)
	s.Restore()

	s.SignOut()

	if got := s.State(); got != StateAnonymous {
		t.Fatalf("state = %v, want StateAnonymous", got)
	}
	if s.Token() != "" {
		t.Error("token survived sign-out")
	}
	if _, err := os.Stat(filepath.Join(dir, tokenFile)); !os.IsNotExist(err) {
		t.Error("token file survived sign-out")
	}
}

func TestRefresh_SignOutMidFlightDoesNotResurrect(t *testing.T) {
	dir := t.TempDir()
	writeState(t, dir, "oldtok", `{"id":1,"username":"asha","email":"a@b.c","monthStartDay":1}`)
	s := NewStore(dir)
	s.Restore()

	// Sign out while the profile response is still in flight; the refresh
	// must not rewrite the files or the in-memory session afterwards.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.SignOut()
		w.Write([]byte(`{"id":1,"username":"asha","email":"a@b.c","monthStartDay":1}`))
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, s)
	s.Refresh(context.Background(), c)

	if got := s.State(); got != StateAnonymous {
		t.Fatalf("state = %v, want StateAnonymous after mid-flight sign-out", got)
	}
	if s.Token() != "" {
		t.Errorf("Token() = %q, want empty", s.Token())
	}
	if _, err := os.Stat(filepath.Join(dir, tokenFile)); !os.IsNotExist(err) {
		t.Error("token file resurrected by refresh after sign-out")
	}
	if _, err := os.Stat(filepath.Join(dir, profileFile)); !os.IsNotExist(err) {
		t.Error("profile file resurrected by refresh after sign-out")
	}

	restarted := NewStore(dir)
	restarted.Restore()
	if got := restarted.State(); got != StateAnonymous {
		t.Fatalf("state after restart = %v, want StateAnonymous", got)
	}
}

func TestUpdateMonthStartDay_RejectsOutOfRange(t *testing.T) {
	s := NewStore(t.TempDir())
	for _, day := range []int{0, 29, -1} {
		if err := s.UpdateMonthStartDay(context.Background(), nil, day); err == nil {
			t.Errorf("UpdateMonthStartDay(%d) = nil, want error", day)
		}
	}
}
