package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWithTask_TagsRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithTask(WithLogger(context.Background(), logger), "particle")
	FromContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), "task=particle")
	assert.Contains(t, buf.String(), "msg=hello")
}
