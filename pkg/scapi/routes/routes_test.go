package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/quatton/scitech/pkg/db"
	"github.com/quatton/scitech/pkg/kv"
	"github.com/quatton/scitech/pkg/scapi"
	"github.com/quatton/scitech/pkg/scapi/metrics"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scapi/services"
	"github.com/quatton/scitech/pkg/scapi/services/auth"
	"github.com/quatton/scitech/pkg/scapi/services/machines"
	"github.com/quatton/scitech/pkg/sclog"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "password123"
)

func newTestServer(t *testing.T) (*httptest.Server, *services.Services) {
	t.Helper()
	handler, svcs := newTestHandler(t)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, svcs
}

func newTestHandler(t *testing.T) (http.Handler, *services.Services) {
	t.Helper()
	ctx := context.Background()

	database, err := db.New(ctx, db.Config{Driver: db.DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	if _, err := db.Migrate(ctx, database); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svcs := services.NewServices(services.Deps{
		Store:    machines.NewBunStore(database),
		Revoked:  kv.NewMemoryStore(),
		Verifier: auth.StaticVerifier{Email: testEmail, Password: testPassword},
		Secret:   "test-secret",
		TokenTTL: time.Hour,
		Metrics:  metrics.New(),
		Logger:   sclog.Discard(),
	})
	if err := svcs.Machines.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	api := scapi.NewApi()
	RegisterAPI(api.Api, svcs)
	RegisterRaw(api.Router, svcs)
	return api.Router, svcs
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
		"email":    testEmail,
		"password": testPassword,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if out.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return out.Token
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doJSON(t, http.MethodGet, srv.URL+"/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
		"email":    testEmail,
		"password": "nope",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestMachines_RequireToken(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/machines", "/machines/1"} {
		resp := doJSON(t, http.MethodGet, srv.URL+path, "", nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("GET %s without token = %d, want 401", path, resp.StatusCode)
		}
	}

	resp := doJSON(t, http.MethodGet, srv.URL+"/machines", "garbage", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("GET /machines with bad token = %d, want 401", resp.StatusCode)
	}
}

func TestMachines_ListAndGet(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodGet, srv.URL+"/machines", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var all []schemas.Machine
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 machines, got %d", len(all))
	}
	for i, m := range all {
		if m.ID != i+1 {
			t.Errorf("machines[%d].id = %d", i, m.ID)
		}
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/machines/3", token, nil)
	var m schemas.Machine
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("decode get: %v", err)
	}
	if m.Name != "Injection Molding Machine" || m.Status != schemas.StatusStopped {
		t.Errorf("unexpected machine 3: %+v", m)
	}
}

func TestMachines_GetUnknownIs404(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodGet, srv.URL+"/machines/99", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var problem struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&problem); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if problem.Detail != "Machine with ID 99 not found" {
		t.Errorf("detail = %q", problem.Detail)
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/machines/99/update", token, map[string]any{"status": "Running"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("update status = %d, want 404", resp.StatusCode)
	}
}

func TestMachines_NonIntegerIDIs422(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/machines/abc"},
		{http.MethodPost, "/machines/abc/update"},
	} {
		resp := doJSON(t, tc.method, srv.URL+tc.path, token, map[string]any{})
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("%s %s = %d, want 422", tc.method, tc.path, resp.StatusCode)
		}
	}

	resp := doJSON(t, http.MethodGet, srv.URL+"/openapi.json", "", nil)
	defer resp.Body.Close()
	var doc struct {
		Paths map[string]map[string]struct {
			Description string `json:"description"`
		} `json:"paths"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode openapi: %v", err)
	}
	for path, method := range map[string]string{"/machines/{id}": "get", "/machines/{id}/update": "post"} {
		if desc := doc.Paths[path][method].Description; !strings.Contains(desc, "422") {
			t.Errorf("%s %s description does not mention 422: %q", method, path, desc)
		}
	}
}

func TestMachines_UpdateBroadcasts(t *testing.T) {
	srv, svcs := newTestServer(t)
	token := login(t, srv)

	sub := svcs.Hub.Subscribe(4)
	defer sub.Close()

	resp := doJSON(t, http.MethodPost, srv.URL+"/machines/2/update", token, map[string]any{"status": "Running"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}
	var updated schemas.Machine
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update: %v", err)
	}
	if updated.Status != schemas.StatusRunning || updated.EnergyConsumption != 800 || updated.Temperature != 65 {
		t.Errorf("unexpected update response: %+v", updated)
	}

	select {
	case ev := <-sub.C:
		if ev != updated {
			t.Errorf("broadcast %+v, want %+v", ev, updated)
		}
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/machines/2", token, nil)
	var got schemas.Machine
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode get: %v", err)
	}
	if got != updated {
		t.Errorf("GET after update = %+v, want %+v", got, updated)
	}
}

func TestMachines_UpdateWithoutBody(t *testing.T) {
	srv, svcs := newTestServer(t)
	token := login(t, srv)

	sub := svcs.Hub.Subscribe(4)
	defer sub.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/machines/3/update", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}
	var m schemas.Machine
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.ID != 3 || m.Status != schemas.StatusStopped || m.EnergyConsumption != 1500 {
		t.Errorf("record should be unchanged, got %+v", m)
	}

	select {
	case ev := <-sub.C:
		if ev != m {
			t.Errorf("broadcast %+v, want %+v", ev, m)
		}
	case <-time.After(time.Second):
		t.Fatal("no broadcast for an empty update")
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodGet, srv.URL+"/auth/me", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me status = %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/auth/logout", token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout status = %d, want 204", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/machines", token, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("revoked token still accepted: %d", resp.StatusCode)
	}
}

func TestSocket_ReceivesMachineUpdates(t *testing.T) {
	srv, svcs := newTestServer(t)
	token := login(t, srv)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/socket"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitForObservers(t, svcs, 1)

	resp := doJSON(t, http.MethodPost, srv.URL+"/machines/1/update", token, map[string]any{"energyConsumption": 1300.5})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame schemas.MachineEvent
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if frame.Event != "machineUpdates" {
		t.Errorf("event = %q", frame.Event)
	}
	if frame.Data.ID != 1 || frame.Data.EnergyConsumption != 1300.5 {
		t.Errorf("unexpected payload: %+v", frame.Data)
	}
}

func TestEvents_StreamsMachineUpdates(t *testing.T) {
	srv, svcs := newTestServer(t)
	token := login(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/machines/events?id=4", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}

	type result struct {
		resp *http.Response
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := http.DefaultClient.Do(req)
		done <- result{resp, err}
	}()

	waitForObservers(t, svcs, 1)

	// Filtered out by ?id=4.
	doJSON(t, http.MethodPost, srv.URL+"/machines/5/update", token, map[string]any{"status": "Idle"})
	doJSON(t, http.MethodPost, srv.URL+"/machines/4/update", token, map[string]any{"status": "Running"})

	res := <-done
	if res.err != nil {
		t.Fatalf("stream: %v", res.err)
	}
	defer res.resp.Body.Close()

	if ct := res.resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("content type = %q", ct)
	}

	buf := make([]byte, 4096)
	var got strings.Builder
	for !strings.Contains(got.String(), "\n\n") {
		n, err := res.resp.Body.Read(buf)
		got.Write(buf[:n])
		if err != nil {
			break
		}
	}

	out := got.String()
	if !strings.Contains(out, "event: machineUpdates") {
		t.Errorf("missing event name in %q", out)
	}
	if !strings.Contains(out, `"id":4`) || strings.Contains(out, `"id":5`) {
		t.Errorf("unexpected stream payload %q", out)
	}
}

func TestShutdown_ReleasesPushObservers(t *testing.T) {
	handler, svcs := newTestHandler(t)

	srv := httptest.NewUnstartedServer(handler)
	srv.Config = scapi.NewServer(context.Background(), "", handler, svcs.Hub)
	srv.Start()
	t.Cleanup(srv.Close)

	streamCtx, cancelStream := context.WithCancel(context.Background())
	defer cancelStream()
	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, srv.URL+"/machines/events", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	go func() {
		if resp, err := http.DefaultClient.Do(req); err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
	}()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/socket"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitForObservers(t, svcs, 2)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := srv.Config.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown with connected observers: %v", err)
	}
	if n := svcs.Hub.Count(); n != 0 {
		t.Errorf("expected observers to be released, %d left", n)
	}
}

func TestNewServer_BaseContextEndsStreams(t *testing.T) {
	handler, svcs := newTestHandler(t)

	base, cancelBase := context.WithCancel(context.Background())
	srv := httptest.NewUnstartedServer(handler)
	srv.Config = scapi.NewServer(base, "", handler, nil)
	srv.Start()
	t.Cleanup(srv.Close)

	done := make(chan struct{})
	go func() {
		defer close(done)
		resp, err := http.Get(srv.URL + "/machines/events")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
	}()

	waitForObservers(t, svcs, 1)
	cancelBase()

	deadline := time.Now().Add(2 * time.Second)
	for svcs.Hub.Count() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("stream handler still running after the base context was cancelled")
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("client stream did not end")
	}
}

func waitForObservers(t *testing.T, svcs *services.Services, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for svcs.Hub.Count() < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d observers", n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
