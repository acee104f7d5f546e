package identity

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mkondo/go-wordbook/internal/config"
	"github.com/mkondo/go-wordbook/internal/logger"
)

// refreshSkew is how close to expiry a token may get before Token()
// refreshes it.
const refreshSkew = time.Minute

const refreshTimeout = 10 * time.Second

// RESTProvider implements [Provider] against a Firebase-style identity
// service: password sign-in issues an ID token plus a refresh token, and the
// refresh endpoint exchanges the refresh token for a fresh ID token.
type RESTProvider struct {
	client     *resty.Client
	signInURL  string
	refreshURL string
	apiKey     string

	mu           sync.Mutex
	idToken      string
	refreshToken string
	userID       string
	expiresAt    time.Time

	logger *logger.Logger
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	ExpiresIn    string `json:"expiresIn"`
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

// NewRESTProvider constructs a RESTProvider from the identity configuration.
// Returns an error if either endpoint is missing.
func NewRESTProvider(cfg config.Identity, log *logger.Logger) (*RESTProvider, error) {
	if strings.TrimSpace(cfg.SignInURL) == "" || strings.TrimSpace(cfg.RefreshURL) == "" {
		return nil, fmt.Errorf("identity endpoints are not configured")
	}

	return &RESTProvider{
		client:     resty.New().SetTimeout(refreshTimeout),
		signInURL:  cfg.SignInURL,
		refreshURL: cfg.RefreshURL,
		apiKey:     cfg.APIKey,
		logger:     log,
	}, nil
}

// SignIn authenticates with email and password and stores the issued tokens.
// Returns an error if the request fails or the provider rejects the
// credentials.
func (p *RESTProvider) SignIn(ctx context.Context, email, password string) error {
	var body signInResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", p.apiKey).
		SetBody(signInRequest{Email: email, Password: password, ReturnSecureToken: true}).
		SetResult(&body).
		Post(p.signInURL)
	if err != nil {
		return fmt.Errorf("sign in request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("sign in: http %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.idToken = body.IDToken
	p.refreshToken = body.RefreshToken
	p.userID = body.LocalID
	p.expiresAt = tokenExpiry(body.IDToken)
	if p.userID == "" {
		p.userID = tokenUserID(body.IDToken)
	}

	return nil
}

// Token implements [Provider]. When the stored token is within refreshSkew
// of its expiry, it is refreshed in place first; if the refresh fails an
// empty string is returned and the failure is logged.
func (p *RESTProvider) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.idToken == "" {
		return ""
	}
	if time.Until(p.expiresAt) > refreshSkew {
		return p.idToken
	}
	if p.refreshToken == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	if err := p.refreshLocked(ctx); err != nil {
		p.logger.Error().Err(err).Msg("refresh identity token")
		return ""
	}

	return p.idToken
}

// UserID implements [Provider].
func (p *RESTProvider) UserID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.userID
}

// SignOut drops the stored tokens.
func (p *RESTProvider) SignOut() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.idToken = ""
	p.refreshToken = ""
	p.userID = ""
	p.expiresAt = time.Time{}
}

func (p *RESTProvider) refreshLocked(ctx context.Context) error {
	var body refreshResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetQueryParam("key", p.apiKey).
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": p.refreshToken,
		}).
		SetResult(&body).
		Post(p.refreshURL)
	if err != nil {
		return fmt.Errorf("refresh request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("refresh: http %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	p.idToken = body.IDToken
	if body.RefreshToken != "" {
		p.refreshToken = body.RefreshToken
	}
	if body.UserID != "" {
		p.userID = body.UserID
	}
	p.expiresAt = tokenExpiry(body.IDToken)

	return nil
}
