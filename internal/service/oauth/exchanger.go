package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/feretizpina/uber-slack/internal/domain/auth"
	"github.com/feretizpina/uber-slack/pkg/logger"
)

// Exchanger trades a provider authorization code for access/refresh tokens
// and persists the resulting authorization for the Slack user.
type Exchanger struct {
	cfg   Config
	auths auth.Repository
	log   *logger.Logger
	http  *http.Client
	now   func() time.Time
}

// Config holds the OAuth endpoint and client credentials.
type Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Timeout      time.Duration
}

// NewExchanger creates an exchanger.
func NewExchanger(cfg Config, auths auth.Repository, log *logger.Logger) *Exchanger {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Exchanger{
		cfg:   cfg,
		auths: auths,
		log:   log,
		http:  &http.Client{Timeout: timeout},
		now:   time.Now,
	}
}

// Exchange posts the authorization code to the token endpoint and stores the
// returned tokens for the user.
func (e *Exchanger) Exchange(ctx context.Context, userID, code string) error {
	form := url.Values{
		"client_id":     {e.cfg.ClientID},
		"client_secret": {e.cfg.ClientSecret},
		"grant_type":    {"authorization_code"},
		"redirect_uri":  {e.cfg.RedirectURL},
		"code":          {code},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.http.Do(req)
	if err != nil {
		return fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("token exchange: endpoint returned %d: %s", resp.StatusCode, snippet)
	}

	var out struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("token exchange: decode response: %w", err)
	}
	if out.AccessToken == "" {
		return fmt.Errorf("token exchange: response carried no access token")
	}

	a := &auth.Authorization{
		UserID:       userID,
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		ExpiresAt:    e.now().Add(time.Duration(out.ExpiresIn) * time.Second),
	}
	if err := e.auths.Save(ctx, a); err != nil {
		return fmt.Errorf("token exchange: save authorization: %w", err)
	}

	e.log.Info("uber account linked", logger.String("user_id", userID))
	return nil
}
