package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// ErrGoogleDisabled is returned when Google sign-in is not configured.
var ErrGoogleDisabled = errors.New("google sign-in is not configured")

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleIdentity is the verified identity of a Google account.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// GoogleVerifier verifies Google Identity Services credentials.
type GoogleVerifier interface {
	Verify(ctx context.Context, credential string) (*GoogleIdentity, error)
}

type idTokenVerifier struct {
	clientID string
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// NewGoogleVerifier returns a verifier checking ID tokens issued for clientID.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &idTokenVerifier{clientID: clientID, validate: idtoken.Validate}
}

func (v *idTokenVerifier) Verify(ctx context.Context, credential string) (*GoogleIdentity, error) {
	payload, err := v.validate(ctx, credential, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, err.Error())
	}

	claim := func(k string) string {
		s, _ := payload.Claims[k].(string)
		return s
	}
	verified, _ := payload.Claims["email_verified"].(bool)

	return &GoogleIdentity{
		Subject:       payload.Subject,
		Email:         claim("email"),
		EmailVerified: verified,
		Name:          claim("name"),
		Picture:       claim("picture"),
	}, nil
}

// GoogleOAuth runs the authorization code flow.
type GoogleOAuth struct {
	cfg *oauth2.Config
}

func NewGoogleOAuth(clientID, clientSecret, redirectURL string) *GoogleOAuth {
	return &GoogleOAuth{cfg: &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}}
}

// AuthCodeURL returns the consent page URL.
func (o *GoogleOAuth) AuthCodeURL(state string) string {
	return o.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

type userInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Exchange trades code for a token and loads the account's identity.
func (o *GoogleOAuth) Exchange(ctx context.Context, code string) (*GoogleIdentity, error) {
	token, err := o.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange: %s", ErrInvalidCredentials, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := o.cfg.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get user info: status %d", resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	return &GoogleIdentity{
		Subject:       info.ID,
		Email:         info.Email,
		EmailVerified: info.VerifiedEmail,
		Name:          info.Name,
		Picture:       info.Picture,
	}, nil
}
