package helper

import (
	"strconv"
	"strings"
	"time"

	"ewm_backend/internals/helpers/dbtime"

	"github.com/gofiber/fiber/v2"
)

func ParamInt64(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, Validation("Invalid path parameter %s: %q", name, raw)
	}
	return id, nil
}

func QueryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, Validation("Invalid query parameter %s: %q", key, raw)
	}
	return n, nil
}

// QueryBool returns nil when the parameter is absent.
func QueryBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, Validation("Invalid query parameter %s: %q", key, raw)
	}
	return &b, nil
}

// QueryDateTime parses the wire date-time layout; nil when absent.
func QueryDateTime(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := dbtime.Parse(raw)
	if err != nil {
		return nil, Validation("Invalid query parameter %s: %v", key, err)
	}
	return &t, nil
}

// QueryStrings accepts both repeated keys (?k=a&k=b) and comma lists (?k=a,b).
// It returns nil when the key is absent.
func QueryStrings(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		for _, part := range strings.Split(string(v), ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func QueryInt64s(c *fiber.Ctx, key string) ([]int64, error) {
	parts := QueryStrings(c, key)
	if parts == nil {
		return nil, nil
	}
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, Validation("Invalid query parameter %s: %q", key, p)
		}
		out = append(out, n)
	}
	return out, nil
}
