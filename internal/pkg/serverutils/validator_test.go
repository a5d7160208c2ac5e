package serverutils

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBodyMalformedJSONIsBadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "truncated object", body: `{"initial_query":`},
		{name: "bare text", body: `not json at all`},
		{name: "unbalanced array", body: `{"college_ids": [1, 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Post("/", func(ctx *fiber.Ctx) error {
				var req struct {
					InitialQuery string `json:"initial_query"`
				}
				if err := ParseBody(ctx, &req); err != nil {
					return err
				}
				return ctx.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestParseBodyAcceptsWellFormedJSON(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	var got string
	app.Post("/", func(ctx *fiber.Ctx) error {
		var req struct {
			InitialQuery string `json:"initial_query"`
		}
		if err := ParseBody(ctx, &req); err != nil {
			return err
		}
		got = req.InitialQuery
		return ctx.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(`{"initial_query":"engineering"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "engineering", got)
}
