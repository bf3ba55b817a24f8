package scsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/quatton/scitech/pkg/client"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scsdk/scerr"
)

// ErrSessionExpired is wrapped into every unauthorized error from an
// authenticated call. The stored token has already been cleared by then.
var ErrSessionExpired = errors.New("session expired")

// Sdk is a small wrapper around the generated API client with the stored
// token baked in, so CLI commands don't wire keyring + client + headers
// themselves.
type Sdk struct {
	Client  *client.ClientWithResponses
	BaseURL string
	Token   string

	// Persist toggles keyring writes; tests turn it off.
	Persist bool
}

// skipAuthEditorKey skips authRequestEditor entirely, for login.
type skipAuthEditorKey struct{}

// optionalAuthKey lets a request go out without a token when none is stored.
type optionalAuthKey struct{}

// MachineUpdate mirrors the update body; nil fields are left unchanged.
type MachineUpdate = client.UpdateMachineJSONRequestBody

// NewSdk returns a client for cfg's base URL using any token saved for it.
func NewSdk(cfg *Config) (*Sdk, error) {
	baseURL := cfg.GetString(BaseUrlKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	token, err := LoadToken(baseURL)
	if err != nil {
		return nil, scerr.New(scerr.CodeUnknown, fmt.Errorf("reading keyring: %w", err))
	}

	sdk, err := New(baseURL, token)
	if err != nil {
		return nil, err
	}
	sdk.Persist = true
	return sdk, nil
}

// New builds an Sdk for baseURL with an explicit token. It never touches the
// keyring until Persist is set.
func New(baseURL, token string, opts ...client.ClientOption) (*Sdk, error) {
	sdk := &Sdk{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
	}

	opts = append(opts, client.WithRequestEditorFn(sdk.authRequestEditor))
	c, err := client.NewClientWithResponses(sdk.BaseURL, opts...)
	if err != nil {
		return nil, scerr.New(scerr.CodeInvalid, fmt.Errorf("base url %q: %w", baseURL, err))
	}
	sdk.Client = c
	return sdk, nil
}

// ClearCredentials forgets the token locally and in the keyring.
func (s *Sdk) ClearCredentials() {
	if s == nil {
		return
	}
	if s.Persist && s.BaseURL != "" {
		_ = DeleteToken(s.BaseURL)
	}
	s.Token = ""
}

// HandleUnauthorized clears the cached token when status is a 401 and reports
// whether it did.
func (s *Sdk) HandleUnauthorized(status int) bool {
	if status != http.StatusUnauthorized {
		return false
	}
	s.ClearCredentials()
	return true
}

func (s *Sdk) authRequestEditor(ctx context.Context, req *http.Request) error {
	if ctx.Value(skipAuthEditorKey{}) != nil {
		return nil
	}
	if s.Token == "" {
		if ctx.Value(optionalAuthKey{}) != nil {
			return nil
		}
		return scerr.New(scerr.CodeUnauthorized, errors.New("not logged in"))
	}
	// Opaque tokens are sent as-is and left for the server to judge.
	if info, err := ParseTokenInfo(s.Token); err == nil && info.Expired(time.Now(), 0) {
		s.ClearCredentials()
		return scerr.New(scerr.CodeUnauthorized, ErrSessionExpired)
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	return nil
}

// Login exchanges credentials for a token and stores it.
func (s *Sdk) Login(ctx context.Context, email, password string) (string, error) {
	ctx = context.WithValue(ctx, skipAuthEditorKey{}, true)
	resp, err := s.Client.AuthLoginWithResponse(ctx, client.AuthLoginJSONRequestBody{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", callError(err)
	}
	if resp.JSON200 == nil {
		return "", s.apiError(resp.HTTPResponse, resp.ApplicationproblemJSONDefault, false)
	}

	token := resp.JSON200.Token
	s.Token = token
	if s.Persist {
		if err := SaveToken(s.BaseURL, token); err != nil {
			return token, scerr.New(scerr.CodeUnknown, fmt.Errorf("saving token: %w", err))
		}
	}
	return token, nil
}

// Logout revokes the token server-side, then forgets it locally even if the
// server call failed.
func (s *Sdk) Logout(ctx context.Context) error {
	if s.Token == "" {
		return nil
	}
	resp, err := s.Client.AuthLogoutWithResponse(ctx)
	s.ClearCredentials()
	if err != nil {
		if scerr.IsCode(err, scerr.CodeUnauthorized) {
			return nil
		}
		return callError(err)
	}

	switch resp.StatusCode() {
	case http.StatusNoContent, http.StatusOK, http.StatusUnauthorized:
		return nil
	}
	return s.apiError(resp.HTTPResponse, resp.ApplicationproblemJSONDefault, false)
}

func (s *Sdk) Me(ctx context.Context) (*schemas.User, error) {
	resp, err := s.Client.AuthMeWithResponse(ctx)
	if err != nil {
		return nil, callError(err)
	}
	if resp.JSON200 == nil {
		return nil, s.apiError(resp.HTTPResponse, resp.ApplicationproblemJSONDefault, true)
	}
	return &schemas.User{
		Email:     resp.JSON200.User.Email,
		ExpiresAt: resp.JSON200.User.ExpiresAt,
	}, nil
}

func (s *Sdk) ListMachines(ctx context.Context) ([]schemas.Machine, error) {
	resp, err := s.Client.ListMachinesWithResponse(ctx)
	if err != nil {
		return nil, callError(err)
	}
	if resp.JSON200 == nil {
		return nil, s.apiError(resp.HTTPResponse, resp.ApplicationproblemJSONDefault, true)
	}

	out := make([]schemas.Machine, 0, len(*resp.JSON200))
	for _, m := range *resp.JSON200 {
		out = append(out, fromClientMachine(m))
	}
	return out, nil
}

func (s *Sdk) GetMachine(ctx context.Context, id int) (*schemas.Machine, error) {
	resp, err := s.Client.GetMachineWithResponse(ctx, int64(id))
	if err != nil {
		return nil, callError(err)
	}
	if resp.JSON200 == nil {
		return nil, s.apiError(resp.HTTPResponse, resp.ApplicationproblemJSONDefault, true)
	}
	m := fromClientMachine(*resp.JSON200)
	return &m, nil
}

func (s *Sdk) UpdateMachine(ctx context.Context, id int, upd MachineUpdate) (*schemas.Machine, error) {
	resp, err := s.Client.UpdateMachineWithResponse(ctx, int64(id), upd)
	if err != nil {
		return nil, callError(err)
	}
	if resp.JSON200 == nil {
		return nil, s.apiError(resp.HTTPResponse, resp.ApplicationproblemJSONDefault, true)
	}
	m := fromClientMachine(*resp.JSON200)
	return &m, nil
}

func fromClientMachine(m client.Machine) schemas.Machine {
	return schemas.Machine{
		ID:                int(m.Id),
		Name:              m.Name,
		Status:            m.Status,
		Temperature:       int(m.Temperature),
		EnergyConsumption: m.EnergyConsumption,
	}
}

// callError keeps codes set by the request editor and marks everything else,
// transport failures mostly, as unknown.
func callError(err error) error {
	var coded *scerr.Error
	if errors.As(err, &coded) {
		return err
	}
	return scerr.New(scerr.CodeUnknown, err)
}

// apiError maps a non-2xx response onto a coded error. A 401 on an
// authenticated call clears the stored token.
func (s *Sdk) apiError(resp *http.Response, problem *client.ErrorModel, authed bool) error {
	if resp == nil {
		return scerr.New(scerr.CodeUnknown, errors.New("empty response"))
	}

	msg := resp.Status
	if problem != nil {
		switch {
		case problem.Detail != nil && *problem.Detail != "":
			msg = *problem.Detail
		case problem.Title != nil && *problem.Title != "":
			msg = *problem.Title
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if authed && s.HandleUnauthorized(resp.StatusCode) {
			return scerr.New(scerr.CodeUnauthorized, ErrSessionExpired)
		}
		return scerr.New(scerr.CodeUnauthorized, errors.New(msg))
	case http.StatusNotFound:
		return scerr.New(scerr.CodeNotFound, errors.New(msg))
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return scerr.New(scerr.CodeInvalid, errors.New(msg))
	}
	return scerr.New(scerr.CodeUnknown, fmt.Errorf("status %d: %s", resp.StatusCode, msg))
}
