package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "optimize",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"target": 93.0},
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=optimize")
	assert.Contains(t, out, "duration_ms=12")
	assert.Contains(t, out, "target=93")
}

func TestLogUseCaseObserver_FieldsInKeyOrder(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "simulate",
		Success: true,
		Fields:  map[string]any{"seed": 7, "iterations": 1000, "deterministic": false},
	})

	out := buf.String()
	det := strings.Index(out, "deterministic=")
	iter := strings.Index(out, "iterations=")
	seed := strings.Index(out, "seed=")
	require.True(t, det > 0 && iter > 0 && seed > 0, out)
	assert.Less(t, det, iter)
	assert.Less(t, iter, seed)
}

func TestLogUseCaseObserver_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "simulate",
		Err:  errors.New("boom"),
	})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestLogUseCaseObserver_InvalidInputIsWarn(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "optimize",
		Err:  fmt.Errorf("target: %w", domain.ErrInvalidInput),
	})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.NotContains(t, buf.String(), "level=ERROR")
}

func TestNewSlogUseCaseObserver_UsesGivenLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil)).With("component", "engine")

	NewSlogUseCaseObserver(logger).ObserveUseCase(context.Background(), UseCaseEvent{Name: "quality", Success: true})
	assert.Contains(t, buf.String(), "component=engine")
	assert.Contains(t, buf.String(), "use_case=quality")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.Equal(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop_SkipsNil(t *testing.T) {
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
	assert.Equal(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}
