package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// OptionalUser resolves the authenticated user from the bearer token if one
// is present and valid, and returns uuid.Nil otherwise. It never fails:
// expired tokens, garbage tokens and absent headers all degrade to an
// anonymous session. Only enrichment paths (preference merging during
// refinement) may use this; authorization-checking routes go through
// JwtMiddleware and must not be switched to this helper.
func OptionalUser(ctx *fiber.Ctx) uuid.UUID {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return uuid.Nil
	}

	token, err := jwt.Parse(authHeader[7:], func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil
	}

	idStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil
	}

	userId, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil
	}
	return userId
}

// SessionUser reads the user id placed in locals by JwtMiddleware.
func SessionUser(ctx *fiber.Ctx) uuid.UUID {
	idStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(idStr)
	return userId
}
