package helper

import (
	"errors"
	"io"
	"testing"

	"go.uber.org/zap"
)

var errPlain = errors.New("secret detail")

func zapNop() *zap.Logger { return zap.NewNop() }

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}
