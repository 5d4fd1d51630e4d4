package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Sessions are anonymous: the token carries nothing but a random session ID
// used to group quiz attempts from the same browser. It authenticates no one.

const cookieName = "ctutor_session"

var sessionSecret []byte

var ErrInvalidSession = errors.New("invalid session token")

type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func Init() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		panic("SESSION_SECRET is not set")
	}
	sessionSecret = []byte(secret)
}

// Issue creates a fresh session ID and a signed token carrying it.
func Issue() (token string, sessionID string, err error) {
	sessionID = uuid.NewString()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString(sessionSecret)
	if err != nil {
		return "", "", err
	}
	return token, sessionID, nil
}

func Validate(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return sessionSecret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.SessionID == "" {
		return "", ErrInvalidSession
	}
	return claims.SessionID, nil
}

type contextKey struct{}

// Middleware attaches a session ID to the request context, issuing a new
// session cookie on first contact or when the presented token is invalid.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string

		if c, err := r.Cookie(cookieName); err == nil {
			if id, err := Validate(c.Value); err == nil {
				sessionID = id
			}
		}

		if sessionID == "" {
			token, id, err := Issue()
			if err == nil {
				sessionID = id
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   30 * 24 * 60 * 60,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
		}

		ctx := context.WithValue(r.Context(), contextKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the session ID set by Middleware.
func FromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(contextKey{}).(string)
	if !ok || id == "" {
		return "", ErrInvalidSession
	}
	return id, nil
}
