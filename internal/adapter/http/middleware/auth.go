package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"waste_pickup/pkg"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

const (
	ctxUserID = "auth.user_id"
	ctxRole   = "auth.role"
	ctxEmail  = "auth.email"

	defaultLeeway = 15 * time.Second
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this operation", http.StatusForbidden)
)

// Claims is the bearer token payload: the subject is the user id.
type Claims struct {
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller.
type Principal struct {
	UserID string
	Role   string
	Email  string
}

// TokenVerifier validates HS256 tokens signed with a shared secret.
type TokenVerifier struct {
	secret []byte
	leeway time.Duration
}

func NewTokenVerifier(secret string) (*TokenVerifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &TokenVerifier{secret: []byte(secret), leeway: defaultLeeway}, nil
}

func (v *TokenVerifier) Verify(token string) (Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Principal{}, errors.New("token required")
	}
	claims := Claims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	)
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return Principal{}, err
	}
	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return Principal{}, errors.New("token subject required")
	}
	return Principal{UserID: sub, Role: strings.ToLower(strings.TrimSpace(claims.Role)), Email: claims.Email}, nil
}

// Sign issues a token for p. Used by tooling and tests; the service itself
// only verifies.
func (v *TokenVerifier) Sign(p Principal, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Role:  p.Role,
		Email: p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer" token.
func RequireAuth(v *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		p, err := v.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		SetPrincipal(c, p)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(r)] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := allowed[c.GetString(ctxRole)]; !ok {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(ctxUserID, p.UserID)
	c.Set(ctxRole, p.Role)
	c.Set(ctxEmail, p.Email)
}

func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func Role(c *gin.Context) string {
	return c.GetString(ctxRole)
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
