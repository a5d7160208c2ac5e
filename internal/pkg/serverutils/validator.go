package serverutils

import (
	"fmt"
	"strings"

	"college-compass-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ParseBody decodes the request body into out. Malformed bodies are a
// client fault, so parse failures surface as a 400-class AppError rather
// than an opaque 500.
func ParseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return apperror.Validation("Invalid request body")
	}
	return nil
}

// ValidateRequest runs struct-tag validation and converts failures into a
// 400-class AppError listing the offending fields.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperror.Validation("Invalid request body")
		}

		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
		}
		return apperror.Validation("Invalid fields: " + strings.Join(fields, ", "))
	}
	return nil
}
