package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SessionCookieName is the cookie carrying the signed operator session.
const SessionCookieName = "venue_session"

const sessionTTL = 12 * time.Hour

// Service checks operator credentials and signs session cookies.
type Service struct {
	db            *sql.DB
	sessionSecret []byte
	now           func() time.Time
}

// NewService returns a Service using sessionSecret to sign cookies.
func NewService(db *sql.DB, sessionSecret string) *Service {
	return &Service{db: db, sessionSecret: []byte(sessionSecret), now: time.Now}
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// EnsureUser inserts the operator account when it does not exist yet. It
// reports whether a row was inserted.
func EnsureUser(ctx context.Context, db *sql.DB, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}

	var exists bool
	if err := db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = ? LIMIT 1)`, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check operator existence: %w", err)
	}
	if exists {
		return false, nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}

	if _, err := db.ExecContext(ctx, `INSERT INTO users (email, password_hash) VALUES (?, ?)`, email, hash); err != nil {
		return false, fmt.Errorf("insert operator: %w", err)
	}
	return true, nil
}

// ValidateCredentials reports whether password matches the stored hash for email.
func (s *Service) ValidateCredentials(ctx context.Context, email, password string) (bool, error) {
	var passwordHash string
	err := s.db.QueryRowContext(ctx, `SELECT password_hash FROM users WHERE email = ?`, email).Scan(&passwordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query operator credentials: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("compare password hash: %w", err)
	}
	return true, nil
}

// CreateSessionValue signs email and an expiry into a cookie value.
func (s *Service) CreateSessionValue(email string) string {
	expires := s.now().Add(sessionTTL).Unix()
	payload := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf("%d|%s", expires, email)))
	return payload + "." + s.sign(payload)
}

// VerifySessionValue returns the email carried by a valid, unexpired value.
func (s *Service) VerifySessionValue(value string) (string, bool) {
	payload, signature, ok := strings.Cut(value, ".")
	if !ok {
		return "", false
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return "", false
	}
	expected, err := hex.DecodeString(s.sign(payload))
	if err != nil || !hmac.Equal(provided, expected) {
		return "", false
	}

	decoded, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", false
	}

	rawExpires, email, ok := strings.Cut(string(decoded), "|")
	if !ok || email == "" {
		return "", false
	}
	expires, err := strconv.ParseInt(rawExpires, 10, 64)
	if err != nil {
		return "", false
	}
	if s.now().Unix() > expires {
		return "", false
	}

	return email, true
}

func (s *Service) sign(payload string) string {
	mac := hmac.New(sha256.New, s.sessionSecret)
	_, _ = mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// SetSessionCookie starts a session for email.
func (s *Service) SetSessionCookie(w http.ResponseWriter, email string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.CreateSessionValue(email),
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie ends the current session.
func (s *Service) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// IsAuthenticated reports whether r carries a valid session cookie.
func (s *Service) IsAuthenticated(r *http.Request) bool {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return false
	}
	_, ok := s.VerifySessionValue(cookie.Value)
	return ok
}

// Middleware redirects unauthenticated requests to /login. The login page
// and static assets stay reachable.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" || r.URL.Path == "/healthz" || strings.HasPrefix(r.URL.Path, "/static/") {
			next.ServeHTTP(w, r)
			return
		}

		if !s.IsAuthenticated(r) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
