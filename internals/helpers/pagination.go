package helper

import (
	"ewm_backend/internals/repository"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultFrom = 0
	DefaultSize = 10
)

// PageFromOffset maps an item offset to a page window. The page index is
// from/size (integer division), so a from that is not a multiple of size is
// rounded down to the start of its page.
func PageFromOffset(from, size int) (repository.Page, error) {
	if from < 0 {
		return repository.Page{}, Validation("from must be zero or positive, got %d", from)
	}
	if size <= 0 {
		return repository.Page{}, Validation("size must be positive, got %d", size)
	}
	index := from / size
	return repository.Page{Offset: index * size, Limit: size}, nil
}

// ParsePage reads ?from= and ?size= with defaults 0 and 10.
func ParsePage(c *fiber.Ctx) (repository.Page, error) {
	from, err := QueryInt(c, "from", DefaultFrom)
	if err != nil {
		return repository.Page{}, err
	}
	size, err := QueryInt(c, "size", DefaultSize)
	if err != nil {
		return repository.Page{}, err
	}
	return PageFromOffset(from, size)
}
