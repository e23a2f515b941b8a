package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dugout-app/dugout/pkg/config"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned when a token is invalid.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNoSecret is returned when no token signing secret is configured.
	ErrNoSecret = errors.New("auth secret is not configured")
)

// SigningMethod is the method identity tokens are signed with.
var SigningMethod = jwt.SigningMethodHS256

// anonymousPrefix marks the uids of identities issued by this server.
const anonymousPrefix = "anon_"

// Claims are the claims of an identity token. The subject is the user id.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken signs an identity token for user. A zero ttl issues a token
// that never expires.
func IssueToken(cfg *config.Config, user proto.User, ttl time.Duration) (string, time.Time, error) {
	if cfg == nil {
		return "", time.Time{}, config.ErrNilConfig
	}
	if cfg.Auth.Secret == "" {
		return "", time.Time{}, ErrNoSecret
	}

	now := time.Now()
	claims := Claims{
		Name: user.DisplayName(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID(),
			Issuer:   cfg.Auth.Issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = now.Add(ttl)
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}

	token := jwt.NewWithClaims(SigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Auth.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken verifies an identity token and returns the identity it
// carries.
func ParseToken(cfg *config.Config, bearer string) (proto.Identity, error) {
	if cfg == nil || cfg.Auth.Secret == "" {
		return proto.Identity{}, ErrNoSecret
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{SigningMethod.Alg()}),
		jwt.WithIssuedAt(),
	}
	if cfg.Auth.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Auth.Issuer))
	}

	token, err := jwt.ParseWithClaims(bearer, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.Auth.Secret), nil
	}, opts...)
	if err != nil {
		return proto.Identity{}, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !token.Valid || !ok || claims.Subject == "" {
		return proto.Identity{}, ErrInvalidToken
	}

	return proto.Identity{UID: claims.Subject, Name: claims.Name}, nil
}

// authenticate authenticates the user from the request. It returns a nil
// user and no error when the request carries no credentials.
func authenticate(r *http.Request) (proto.User, error) {
	ctx := r.Context()
	logger := log.FromContext(ctx)

	header := r.Header.Get("Authorization")
	if header == "" {
		logger.Debug("no authorization header")
		return nil, nil
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, ErrInvalidToken
	}

	user, err := ParseToken(config.FromContext(ctx), strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}
	return user, nil
}

// withIdentity stores the authenticated user, if any, in the request
// context. Requests with bad credentials are rejected.
func withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.FromContext(r.Context())
		user, err := authenticate(r)
		if err != nil {
			logger.Debug("failed to authenticate", "err", err)
			renderError(w, r, http.StatusUnauthorized, ErrInvalidToken)
			return
		}

		if user != nil {
			logger.Debug("authenticated", "uid", user.ID())
			r = r.WithContext(proto.WithUserContext(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

// requireUser rejects anonymous requests.
func requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if proto.UserFromContext(r.Context()) == nil {
			renderError(w, r, http.StatusUnauthorized, errors.New("authentication required"))
			return
		}
		next(w, r)
	}
}

type sessionResponse struct {
	Token     string     `json:"token"`
	UID       string     `json:"uid"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// postAnonymousSession issues an anonymous identity. Callers that already
// hold a valid identity get a fresh token for it instead.
func postAnonymousSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cfg := config.FromContext(ctx)
	logger := log.FromContext(ctx)

	user := proto.UserFromContext(ctx)
	if user == nil {
		user = proto.Identity{UID: anonymousPrefix + uuid.NewString()}
	}

	token, expiresAt, err := IssueToken(cfg, user, cfg.Auth.AnonymousTTL)
	if err != nil {
		logger.Error("failed to issue token", "err", err)
		renderAPIError(w, r, err)
		return
	}

	res := sessionResponse{Token: token, UID: user.ID()}
	if !expiresAt.IsZero() {
		res.ExpiresAt = &expiresAt
	}
	renderJSON(w, http.StatusCreated, res)
}
