package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("tok123"))
	if _, err := c.ListCategories(context.Background()); err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("Authorization = %q, want %q", gotAuth, "Bearer tok123")
	}
}

func TestClient_AnonymousSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1,"username":"u","email":"e","token":"tok"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken(""))
	if _, err := c.SignIn(context.Background(), SignInRequest{Email: "e", Password: "p"}); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization = %q, want empty for anonymous request", gotAuth)
	}
}

func TestClient_RequestsHitAPIPrefix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", staticToken("t"))
	if _, err := c.ListBudgets(context.Background()); err != nil {
		t.Fatalf("ListBudgets: %v", err)
	}
	if gotPath != "/api/budget" {
		t.Fatalf("path = %q, want /api/budget", gotPath)
	}
}

func TestClient_UnauthorizedFiresHookOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var hookCalls atomic.Int32
	c := NewClient(srv.URL, staticToken("stale"))
	c.OnSessionExpired(func() { hookCalls.Add(1) })

	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.CurrentMonthExpenses(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("request %d: err = %v, want ErrUnauthorized", i, err)
		}
	}
	if got := hookCalls.Load(); got != 1 {
		t.Fatalf("hook fired %d times, want 1", got)
	}
}

func TestClient_ExpiredShortCircuitsWithoutNetwork(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("stale"))
	if _, err := c.ListCategories(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("first request err = %v, want ErrUnauthorized", err)
	}
	if _, err := c.ListCategories(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("second request err = %v, want ErrUnauthorized", err)
	}
	if got := requests.Load(); got != 1 {
		t.Fatalf("server saw %d requests, want 1 (expired client must not retry)", got)
	}
}

func TestClient_ResetAllowsReauthentication(t *testing.T) {
	var authRequests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/signin" {
			authRequests.Add(1)
			w.Write([]byte(`{"id":1,"username":"asha","email":"a@b.c","token":"fresh"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("stale"))
	if _, err := c.CurrentMonthExpenses(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}

	// Still latched: sign-in must not reach the backend.
	if _, err := c.SignIn(context.Background(), SignInRequest{Email: "a@b.c", Password: "pw"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("sign-in on expired client err = %v, want ErrUnauthorized", err)
	}
	if got := authRequests.Load(); got != 0 {
		t.Fatalf("backend saw %d auth requests before Reset, want 0", got)
	}

	c.Reset()
	res, err := c.SignIn(context.Background(), SignInRequest{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("sign-in after Reset: %v", err)
	}
	if res.Token != "fresh" {
		t.Errorf("token = %q, want fresh", res.Token)
	}
	if got := authRequests.Load(); got != 1 {
		t.Fatalf("backend saw %d auth requests after Reset, want 1", got)
	}
}

func TestClient_HookFiresAgainAfterReset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var hookCalls atomic.Int32
	c := NewClient(srv.URL, staticToken("stale"))
	c.OnSessionExpired(func() { hookCalls.Add(1) })

	_, _ = c.ListCategories(context.Background())
	c.Reset()
	_, _ = c.ListCategories(context.Background())

	if got := hookCalls.Load(); got != 2 {
		t.Fatalf("hook fired %d times across two expiries, want 2", got)
	}
}

func TestClient_DecodesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Email already in use"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.SignUp(context.Background(), SignUpRequest{Username: "u", Email: "e", Password: "p"})

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Message != "Email already in use" {
		t.Errorf("Message = %q, want backend text", apiErr.Message)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", apiErr.Status)
	}
}

func TestClient_ErrorWithoutMessageKeepsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`oops`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.ListPaymentTypes(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", apiErr.Status)
	}
}

func TestClient_PreferenceEndpointVariants(t *testing.T) {
	var gotURLs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURLs = append(gotURLs, r.URL.String())
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("t"))
	if err := c.UpdateMonthStartDay(context.Background(), 5); err != nil {
		t.Fatalf("UpdateMonthStartDay: %v", err)
	}
	if err := c.UpdatePreferences(context.Background(), 5); err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}

	want := []string{
		"/api/user/preferences/month-start-day?day=5",
		"/api/user/preferences",
	}
	for i, w := range want {
		if gotURLs[i] != w {
			t.Errorf("request %d hit %q, want %q", i, gotURLs[i], w)
		}
	}
}

func TestClient_FilterBuildsQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("t"))
	_, err := c.ListExpenses(context.Background(), ExpenseFilter{
		StartDate:   "2026-07-05",
		EndDate:     "2026-08-04",
		PaymentType: "UPI",
	})
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}

	want := "endDate=2026-08-04&paymentType=UPI&startDate=2026-07-05"
	if gotQuery != want {
		t.Fatalf("query = %q, want %q", gotQuery, want)
	}
}
