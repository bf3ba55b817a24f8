package scsdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/quatton/scitech/pkg/client"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scsdk/scerr"
	"github.com/zalando/go-keyring"
)

const goodToken = "good-token"

// fakeAPI answers like the dashboard server for a single machine.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	machine := schemas.Machine{ID: 2, Name: "CNC Milling Machine", Status: "Idle", Temperature: 65, EnergyConsumption: 800}

	problem := func(w http.ResponseWriter, status int, detail string) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"title":%q,"status":%d,"detail":%q}`, http.StatusText(status), status, detail)
	}
	ok := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	}
	authed := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+goodToken {
			problem(w, http.StatusUnauthorized, "Authentication required")
			return false
		}
		return true
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			problem(w, http.StatusBadRequest, "login must not carry a token")
			return
		}
		var in map[string]string
		json.NewDecoder(r.Body).Decode(&in)
		if in["email"] != "admin@example.com" || in["password"] != "password123" {
			problem(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		ok(w, map[string]string{"token": goodToken})
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		if authed(w, r) {
			w.WriteHeader(http.StatusNoContent)
		}
	})
	mux.HandleFunc("GET /machines", func(w http.ResponseWriter, r *http.Request) {
		if authed(w, r) {
			ok(w, []schemas.Machine{machine})
		}
	})
	mux.HandleFunc("GET /machines/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		if r.PathValue("id") != "2" {
			problem(w, http.StatusNotFound, "Machine with ID "+r.PathValue("id")+" not found")
			return
		}
		ok(w, machine)
	})
	mux.HandleFunc("POST /machines/{id}/update", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		var upd MachineUpdate
		json.NewDecoder(r.Body).Decode(&upd)
		m := machine
		if upd.Status != nil {
			m.Status = *upd.Status
		}
		if upd.EnergyConsumption != nil {
			m.EnergyConsumption = *upd.EnergyConsumption
		}
		ok(w, m)
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if authed(w, r) {
			ok(w, map[string]any{"user": map[string]any{"email": "admin@example.com", "expires_at": 2_000_000_000}})
		}
	})
	mux.HandleFunc("GET /machines/events", func(w http.ResponseWriter, r *http.Request) {
		// The stream is public, but a token that is sent must be valid.
		if r.Header.Get("Authorization") != "" && !authed(w, r) {
			return
		}
		if r.Header.Get("Accept") != "text/event-stream" {
			problem(w, http.StatusNotAcceptable, "expected an event stream")
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, ": keepalive\n\n")
		fmt.Fprint(w, "event: heartbeat\ndata: {}\n\n")
		for _, id := range []int{1, 2} {
			if only := r.URL.Query().Get("id"); only != "" && only != strconv.Itoa(id) {
				continue
			}
			m := machine
			m.ID = id
			raw, _ := json.Marshal(m)
			fmt.Fprintf(w, "id: %d\nevent: machineUpdates\ndata: %s\n\n", id, raw)
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestSdk(t *testing.T, srv *httptest.Server, token string) *Sdk {
	t.Helper()
	sdk, err := New(srv.URL, token, client.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return sdk
}

func TestSdk_LoginStoresToken(t *testing.T) {
	keyring.MockInit()
	srv := fakeAPI(t)
	sdk := newTestSdk(t, srv, "")
	sdk.Persist = true

	token, err := sdk.Login(context.Background(), "admin@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != goodToken || sdk.Token != goodToken {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := LoadToken(srv.URL + "/")
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if stored != goodToken {
		t.Errorf("keyring holds %q", stored)
	}

	if err := sdk.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if stored, _ := LoadToken(srv.URL); stored != "" {
		t.Errorf("token still stored after logout: %q", stored)
	}
}

func TestSdk_LoginBadCredentials(t *testing.T) {
	srv := fakeAPI(t)
	sdk := newTestSdk(t, srv, "")

	_, err := sdk.Login(context.Background(), "admin@example.com", "wrong")
	if !scerr.IsCode(err, scerr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if !strings.Contains(err.Error(), "Invalid credentials") {
		t.Errorf("expected server detail in %q", err.Error())
	}
}

func TestSdk_UnauthorizedClearsToken(t *testing.T) {
	srv := fakeAPI(t)
	sdk := newTestSdk(t, srv, "stale-token")

	_, err := sdk.ListMachines(context.Background())
	if !scerr.IsCode(err, scerr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if sdk.Token != "" {
		t.Errorf("token not cleared: %q", sdk.Token)
	}

	// No token at all fails before any request is made.
	if _, err := sdk.ListMachines(context.Background()); !scerr.IsCode(err, scerr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized without a token, got %v", err)
	}
}

func TestSdk_Machines(t *testing.T) {
	srv := fakeAPI(t)
	sdk := newTestSdk(t, srv, goodToken)
	ctx := context.Background()

	all, err := sdk.ListMachines(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListMachines = %v, %v", all, err)
	}

	m, err := sdk.GetMachine(ctx, 2)
	if err != nil {
		t.Fatalf("GetMachine: %v", err)
	}
	if m.Name != "CNC Milling Machine" {
		t.Errorf("unexpected machine %+v", m)
	}

	_, err = sdk.GetMachine(ctx, 99)
	if !scerr.IsCode(err, scerr.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if !strings.Contains(err.Error(), "Machine with ID 99 not found") {
		t.Errorf("unexpected message %q", err.Error())
	}

	status := "Running"
	updated, err := sdk.UpdateMachine(ctx, 2, MachineUpdate{Status: &status})
	if err != nil {
		t.Fatalf("UpdateMachine: %v", err)
	}
	if updated.Status != "Running" || updated.EnergyConsumption != 800 {
		t.Errorf("unexpected update %+v", updated)
	}
}

func TestSdk_Watch(t *testing.T) {
	srv := fakeAPI(t)
	sdk := newTestSdk(t, srv, goodToken)

	var ids []int
	err := sdk.Watch(context.Background(), 0, func(m schemas.Machine) error {
		ids = append(ids, m.ID)
		return nil
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestSdk_WatchSingleMachineWithoutToken(t *testing.T) {
	srv := fakeAPI(t)
	sdk := newTestSdk(t, srv, "")

	var ids []int
	err := sdk.Watch(context.Background(), 2, func(m schemas.Machine) error {
		ids = append(ids, m.ID)
		return nil
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestSdk_WatchStopsOnCallbackError(t *testing.T) {
	srv := fakeAPI(t)
	sdk := newTestSdk(t, srv, goodToken)
	stop := errors.New("stop")

	calls := 0
	err := sdk.Watch(context.Background(), 0, func(m schemas.Machine) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times", calls)
	}
}

func TestSdk_Me(t *testing.T) {
	srv := fakeAPI(t)
	sdk := newTestSdk(t, srv, goodToken)

	user, err := sdk.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user.Email != "admin@example.com" || user.ExpiresAt != 2_000_000_000 {
		t.Errorf("unexpected user %+v", user)
	}
}

func TestSdk_ExpiredTokenSkipsRequest(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "admin@example.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	expired, err := token.SignedString([]byte("whatever"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	t.Cleanup(srv.Close)
	sdk := newTestSdk(t, srv, expired)

	_, err = sdk.ListMachines(context.Background())
	if !errors.Is(err, ErrSessionExpired) || !scerr.IsCode(err, scerr.CodeUnauthorized) {
		t.Fatalf("expected session expired, got %v", err)
	}
	if requests != 0 {
		t.Errorf("server saw %d requests", requests)
	}
	if sdk.Token != "" {
		t.Errorf("token not cleared: %q", sdk.Token)
	}
}

func TestSdk_HandleUnauthorized(t *testing.T) {
	sdk := &Sdk{BaseURL: "http://localhost:3002", Token: goodToken}

	if sdk.HandleUnauthorized(http.StatusNotFound) {
		t.Fatal("404 should not count as unauthorized")
	}
	if sdk.Token != goodToken {
		t.Fatal("token cleared on 404")
	}
	if !sdk.HandleUnauthorized(http.StatusUnauthorized) {
		t.Fatal("401 should count as unauthorized")
	}
	if sdk.Token != "" {
		t.Errorf("token not cleared: %q", sdk.Token)
	}
}
