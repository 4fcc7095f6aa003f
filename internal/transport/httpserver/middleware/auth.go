package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"barangay-records-go/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey int

const userKey contextKey = iota

// User is the authenticated identity stored on the request context.
type User struct {
	ID       string
	Username string
	Position string
}

type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Position string `json:"position"`
}

type JWTAuth struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTAuth(cfg config.AuthConfig) *JWTAuth {
	ttl := cfg.TokenTTL
	if ttl == 0 {
		ttl = 12 * time.Hour
	}
	return &JWTAuth{secret: []byte(cfg.JWTSecret), ttl: ttl}
}

// Sign issues an HS256 token for the given identity.
func (a *JWTAuth) Sign(user User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
		Username: user.Username,
		Position: user.Position,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *JWTAuth) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func (a *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthorized(w)
			return
		}

		claims, err := a.parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			unauthorized(w)
			return
		}

		user := User{
			ID:       claims.Subject,
			Username: claims.Username,
			Position: claims.Position,
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	return user, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":{"code":"invalid_token","message":"invalid or missing token"}}`))
}
