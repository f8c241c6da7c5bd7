// Package session is the identity provider of the service: password and Google
// sign-in, session tokens and resolution of the acting user's profile.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"expohub/models"
	"expohub/store"
)

const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

var (
	// ErrInvalidCredentials is returned for unknown accounts and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signing up with a registered email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrWeakPassword is returned for passwords shorter than six characters.
	ErrWeakPassword = errors.New("password must be at least 6 characters")
	// ErrUnverifiedEmail is returned for Google accounts without a verified email.
	ErrUnverifiedEmail = errors.New("google account email is not verified")
)

const minPasswordLength = 6

// Result is a successful sign-in.
type Result struct {
	User    *models.User
	Token   string
	Created bool
}

// Service authenticates users.
type Service struct {
	users  store.Users
	tokens *Tokens
	google GoogleVerifier
	oauth  *GoogleOAuth
	log    logrus.FieldLogger
	now    func() time.Time
	newID  func() string
}

// Option configures a Service.
type Option func(*Service)

// WithGoogle enables credential sign-in with v and code sign-in with o. Either may be nil.
func WithGoogle(v GoogleVerifier, o *GoogleOAuth) Option {
	return func(s *Service) {
		s.google = v
		s.oauth = o
	}
}

func New(users store.Users, tokens *Tokens, log logrus.FieldLogger, opts ...Option) *Service {
	s := &Service{
		users:  users,
		tokens: tokens,
		log:    log,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Tokens returns the token issuer used by the service.
func (s *Service) Tokens() *Tokens {
	return s.tokens
}

// Signup registers an email/password account.
func (s *Service) Signup(ctx context.Context, email, password string) (*Result, error) {
	email = normalizeEmail(email)
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	u := &models.User{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: &hashed,
		AuthProvider: ProviderEmail,
		DisplayName:  displayNameFromEmail(email),
		ProfileType:  models.Visitor,
		CreatedAt:    now,
		LastSeen:     now,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.result(u, true)
}

// Login verifies an email/password pair.
func (s *Service) Login(ctx context.Context, email, password string) (*Result, error) {
	u, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u.PasswordHash == nil || !CheckPassword(*u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	s.touch(ctx, u.ID)
	return s.result(u, false)
}

// SignInWithCredential signs in with a Google Identity Services credential.
func (s *Service) SignInWithCredential(ctx context.Context, credential string) (*Result, error) {
	if s.google == nil {
		return nil, ErrGoogleDisabled
	}
	id, err := s.google.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}
	return s.signInGoogle(ctx, id)
}

// GoogleAuthURL returns the consent page URL of the code flow.
func (s *Service) GoogleAuthURL(state string) (string, error) {
	if s.oauth == nil {
		return "", ErrGoogleDisabled
	}
	return s.oauth.AuthCodeURL(state), nil
}

// SignInWithCode completes the Google authorization code flow.
func (s *Service) SignInWithCode(ctx context.Context, code string) (*Result, error) {
	if s.oauth == nil {
		return nil, ErrGoogleDisabled
	}
	id, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.signInGoogle(ctx, id)
}

// signInGoogle links the identity to an account with the same email or
// creates one.
func (s *Service) signInGoogle(ctx context.Context, id *GoogleIdentity) (*Result, error) {
	if id.Email == "" || !id.EmailVerified {
		return nil, ErrUnverifiedEmail
	}
	email := normalizeEmail(id.Email)

	u, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if u.GoogleID == nil || *u.GoogleID != id.Subject {
			upd := models.UserUpdate{GoogleID: &id.Subject}
			if err := s.users.UpdateUser(ctx, u.ID, upd); err != nil {
				return nil, fmt.Errorf("failed to link google account: %w", err)
			}
			u.GoogleID = &id.Subject
		}
		s.touch(ctx, u.ID)
		return s.result(u, false)
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	name := id.Name
	if name == "" {
		name = displayNameFromEmail(email)
	}
	now := s.now()
	u = &models.User{
		ID:           s.newID(),
		Email:        email,
		AuthProvider: ProviderGoogle,
		GoogleID:     &id.Subject,
		DisplayName:  name,
		ProfileType:  models.Visitor,
		ImageURL:     id.Picture,
		CreatedAt:    now,
		LastSeen:     now,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.WithField("user", u.ID).Info("created account from google sign-in")
	return s.result(u, true)
}

// Issue signs a fresh token for u, e.g. after a profile change.
func (s *Service) Issue(u *models.User) (string, error) {
	return s.tokens.Issue(u)
}

func (s *Service) result(u *models.User, created bool) (*Result, error) {
	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &Result{User: u, Token: token, Created: created}, nil
}

func (s *Service) touch(ctx context.Context, userID string) {
	now := s.now()
	if err := s.users.UpdateUser(ctx, userID, models.UserUpdate{LastSeen: &now}); err != nil {
		s.log.WithError(err).WithField("user", userID).Warn("failed to update last seen")
	}
}

// Resolve returns the full profile of the claims' user, or the minimal profile
// taken from the claims when the user record cannot be loaded. A non-nil error
// is returned alongside the minimal profile for failures other than a missing
// record.
func Resolve(ctx context.Context, users store.Users, c *Claims) (models.Profile, error) {
	u, err := users.GetUser(ctx, c.UserID)
	switch {
	case err == nil:
		return models.FullProfile{User: u}, nil
	case errors.Is(err, store.ErrNotFound):
		return c.Minimal(), nil
	default:
		return c.Minimal(), fmt.Errorf("failed to load profile: %w", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func displayNameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
