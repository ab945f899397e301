package session

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-issue-service/internal/domain"
	apperrors "github.com/spec-kit/civic-issue-service/pkg/util/errorutil"
)

const sessionKey = "session_gate"

// Middleware resolves bearer tokens into a domain.Session. Requests without
// a token carry the anonymous session; a present but invalid token is
// rejected outright.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Resolve attaches the caller's session to the request context.
func (m *Middleware) Resolve(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		c.Locals(sessionKey, domain.Anonymous())
		return c.Next()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	identity := claims.Identity
	c.Locals(sessionKey, domain.Session{Role: claims.Role, Identity: &identity})
	return c.Next()
}

// FromContext retrieves the caller's session; anonymous when absent.
func FromContext(c *fiber.Ctx) domain.Session {
	val := c.Locals(sessionKey)
	if val == nil {
		return domain.Anonymous()
	}
	session, ok := val.(domain.Session)
	if !ok {
		return domain.Anonymous()
	}
	return session
}

// RequireCitizen ensures the caller holds a citizen session.
func RequireCitizen() fiber.Handler {
	return requireRole(domain.RoleCitizen, "citizen session required")
}

// RequireOfficial ensures the caller holds an official session.
func RequireOfficial() fiber.Handler {
	return requireRole(domain.RoleOfficial, "official session required")
}

func requireRole(role domain.Role, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if FromContext(c).Role != role {
			return apperrors.NewUnauthorized(message)
		}
		return c.Next()
	}
}
