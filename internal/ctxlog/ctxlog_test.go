package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("tick", "generation", 3)

	assert.Contains(t, buf.String(), "generation=3")
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
