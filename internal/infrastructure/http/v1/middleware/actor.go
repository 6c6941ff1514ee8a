package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	appctx "dealerdesk/internal/core/context"
	"dealerdesk/internal/domain/inventory"
)

// RoleClaim is the JWT claim carrying the actor's role.
const RoleClaim = "role"

// ActorRole resolves the caller's role from a bearer token and threads it
// through the request context as an explicit value. A missing header, bad
// token, wrong signing method, or unknown claim degrades to the
// unauthenticated role; listing endpoints stay public with the default
// visibility.
func ActorRole(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := resolveRole(c.GetHeader("Authorization"), secret)

		ctx := appctx.WithActorRole(c.Request.Context(), string(role))
		c.Request = c.Request.WithContext(ctx)
		c.Set("actor_role", string(role))

		c.Next()
	}
}

func resolveRole(authHeader string, secret []byte) inventory.ActorRole {
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return inventory.RoleUnauthenticated
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(
		strings.TrimPrefix(authHeader, prefix),
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		},
	)
	if err != nil || !token.Valid {
		return inventory.RoleUnauthenticated
	}

	raw, _ := claims[RoleClaim].(string)
	return inventory.ParseActorRole(raw)
}

// RoleFromContext returns the parsed actor role for the request.
func RoleFromContext(c *gin.Context) inventory.ActorRole {
	return inventory.ParseActorRole(c.GetString("actor_role"))
}
