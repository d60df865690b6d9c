package sheets

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SpreadsheetsScope grants read/write access to spreadsheets.
const SpreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"

const (
	assertionLifetime = time.Hour
	// expiryLeeway refreshes a cached token slightly before it lapses.
	expiryLeeway      = time.Minute
	jwtBearerGrant    = "urn:ietf:params:oauth:grant-type:jwt-bearer"
)

// TokenSource yields bearer tokens for the Sheets API.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// ServiceAccount is the subset of a service-account key file we need.
type ServiceAccount struct {
	ClientEmail  string `json:"client_email"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyID string `json:"private_key_id"`
	TokenURI     string `json:"token_uri"`
}

// LoadServiceAccount reads a service-account JSON key file.
func LoadServiceAccount(path string) (*ServiceAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}
	return ParseServiceAccount(data)
}

// ParseServiceAccount decodes a service-account JSON key.
func ParseServiceAccount(data []byte) (*ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, fmt.Errorf("decoding credentials: %w", err)
	}
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return nil, errors.New("credentials missing client_email or private_key")
	}
	return &sa, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type oauthError struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

// ServiceAccountTokenSource exchanges an RS256-signed assertion for an
// access token and caches it until shortly before expiry.
type ServiceAccountTokenSource struct {
	account  *ServiceAccount
	key      *rsa.PrivateKey
	tokenURL string
	http     *resty.Client
	now      func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewServiceAccountTokenSource parses the account's private key. tokenURL
// overrides the account's token_uri when set.
func NewServiceAccountTokenSource(account *ServiceAccount, tokenURL string, timeout time.Duration) (*ServiceAccountTokenSource, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(account.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}
	if tokenURL == "" {
		tokenURL = account.TokenURI
	}
	if tokenURL == "" {
		return nil, errors.New("no token URL configured")
	}
	return &ServiceAccountTokenSource{
		account:  account,
		key:      key,
		tokenURL: tokenURL,
		http:     resty.New().SetTimeout(timeout),
		now:      time.Now,
	}, nil
}

// Token returns the cached access token or fetches a new one.
func (s *ServiceAccountTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.token != "" && now.Before(s.expiry.Add(-expiryLeeway)) {
		return s.token, nil
	}

	assertion, err := s.assertion(now)
	if err != nil {
		return "", err
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": jwtBearerGrant,
			"assertion":  assertion,
		}).
		SetResult(&tokenResponse{}).
		SetError(&oauthError{}).
		Post(s.tokenURL)
	if err != nil {
		return "", fmt.Errorf("requesting access token: %w", err)
	}
	if resp.IsError() {
		if e, ok := resp.Error().(*oauthError); ok && e.Error != "" {
			return "", fmt.Errorf("token endpoint %d: %s: %s", resp.StatusCode(), e.Error, e.Description)
		}
		return "", fmt.Errorf("token endpoint %d: %s", resp.StatusCode(), resp.String())
	}

	tr := resp.Result().(*tokenResponse)
	if tr.AccessToken == "" {
		return "", errors.New("token endpoint returned no access_token")
	}
	s.token = tr.AccessToken
	s.expiry = now.Add(time.Duration(tr.ExpiresIn) * time.Second)
	return s.token, nil
}

func (s *ServiceAccountTokenSource) assertion(now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"iss":   s.account.ClientEmail,
		"scope": SpreadsheetsScope,
		"aud":   s.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if s.account.PrivateKeyID != "" {
		token.Header["kid"] = s.account.PrivateKeyID
	}
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("signing assertion: %w", err)
	}
	return signed, nil
}

// StaticTokenSource always returns the same token.
type StaticTokenSource string

func (s StaticTokenSource) Token(context.Context) (string, error) {
	return string(s), nil
}
