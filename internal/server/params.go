package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/taha-arar/blog/internal/repository"
)

// pathID parses the numeric :id path segment
func pathID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("id must be a number", errors.CategoryBadInput).
			WithTextCode("INVALID_ID").
			WithCode(errors.CodeBadRequest).
			WithMetadata(map[string]any{"id": raw})
	}
	return id, nil
}

// pagingParams reads the page and size query params, falling back on
// the repository defaults when absent or unparsable.
func pagingParams(c *fiber.Ctx) (int, int) {
	return c.QueryInt("page", repository.DefaultPage),
		c.QueryInt("size", repository.DefaultSize)
}
