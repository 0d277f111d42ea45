package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"futurewear/internal/errs"
)

// SessionValidator approves or rejects a session token. Two implementations
// exist: AuthService validates against its in-memory session map with
// sliding expiry (authoritative, revocable), and WeakFallbackValidator only
// parses the expiry embedded in the token (weaker, cannot be revoked early).
type SessionValidator interface {
	Validate(token string) bool
}

// WeakFallbackValidator accepts any well-signed, unexpired token. It exists
// for lightweight request gating without access to the session map. Because
// it never consults the map, a logged-out token keeps passing this path
// until its embedded expiry; this is a known limitation, not a bug to fix
// here.
type WeakFallbackValidator struct {
	secret []byte
}

// NewWeakFallbackValidator creates a validator for tokens signed with the
// given secret.
func NewWeakFallbackValidator(jwtSecret string) *WeakFallbackValidator {
	return &WeakFallbackValidator{secret: []byte(jwtSecret)}
}

// Validate parses the token and checks its signature and embedded expiry.
func (v *WeakFallbackValidator) Validate(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return false
	}
	return token.Valid
}

// AuthService is the admin session gate. Login issues an opaque signed
// token recorded in an in-memory map; validation refreshes the record's
// timestamp (sliding expiry). When the record is absent the weak fallback
// path is consulted instead.
type AuthService struct {
	username     string
	passwordHash []byte
	jwtSecret    []byte
	duration     time.Duration
	fallback     *WeakFallbackValidator

	mu       sync.Mutex
	sessions map[string]time.Time
}

// NewAuthService creates an AuthService for the single fixed credential
// pair. Sessions expire after duration of inactivity.
func NewAuthService(username, password, jwtSecret string, duration time.Duration) *AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// Only reachable with an absurdly long password.
		log.Printf("Failed to hash admin password: %v", err)
	}
	return &AuthService{
		username:     username,
		passwordHash: hash,
		jwtSecret:    []byte(jwtSecret),
		duration:     duration,
		fallback:     NewWeakFallbackValidator(jwtSecret),
		sessions:     make(map[string]time.Time),
	}
}

// Login checks the credentials and, on success, issues a fresh token and
// records the session. Expired session records are purged opportunistically
// here.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username {
		return "", fmt.Errorf("invalid credentials: %w", errs.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials: %w", errs.ErrUnauthorized)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": s.username,
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(s.duration).Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[tokenString] = now
	s.purgeExpiredLocked(now)
	return tokenString, nil
}

// Validate reports whether the token belongs to an active session. A hit in
// the session map refreshes its timestamp; a stale record is deleted and
// rejected. Tokens without a record fall through to the weak parser so a
// separate process instance can still gate requests.
func (s *AuthService) Validate(tokenString string) bool {
	if tokenString == "" {
		return false
	}

	s.mu.Lock()
	if ts, ok := s.sessions[tokenString]; ok {
		now := time.Now()
		if now.Sub(ts) > s.duration {
			delete(s.sessions, tokenString)
			s.mu.Unlock()
			return false
		}
		s.sessions[tokenString] = now
		s.mu.Unlock()
		return true
	}
	s.mu.Unlock()

	return s.fallback.Validate(tokenString)
}

// Logout deletes the in-memory session record. The token stays acceptable
// to the fallback path until its embedded expiry passes; early revocation
// only affects the authoritative path.
func (s *AuthService) Logout(tokenString string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenString)
}

// Duration returns the configured session lifetime.
func (s *AuthService) Duration() time.Duration {
	return s.duration
}

func (s *AuthService) purgeExpiredLocked(now time.Time) {
	for token, ts := range s.sessions {
		if now.Sub(ts) > s.duration {
			delete(s.sessions, token)
		}
	}
}
