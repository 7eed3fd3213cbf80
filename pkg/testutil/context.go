// Package testutil provides test helpers shared across uir packages.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/ubports/installer-reporter/pkg/uir_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zaptest"
)

// NewTestContext creates a RuntimeContext whose logs go to t. It also
// installs the test logger as the otelzap global so otelzap.Ctx calls in
// library code are captured.
func NewTestContext(t *testing.T) *uir_io.RuntimeContext {
	t.Helper()
	logger := zaptest.NewLogger(t)
	restore := otelzap.ReplaceGlobals(otelzap.New(logger))
	t.Cleanup(restore)

	ctx := context.Background()
	return &uir_io.RuntimeContext{
		Ctx:        ctx,
		Log:        logger,
		Span:       trace.SpanFromContext(ctx),
		Timestamp:  time.Now(),
		Component:  "test",
		Command:    t.Name(),
		Attributes: make(map[string]string),
	}
}
