package logx

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestContextHandler(t *testing.T) {
	var buff bytes.Buffer

	logger := slog.New(ContextHandler{
		Handler: slog.NewTextHandler(&buff, &slog.HandlerOptions{Level: slog.LevelDebug}),
	})

	ctx := WithAttrs(context.Background(), slog.String("engine", "bing"))
	ctx = WithAttrs(ctx, slog.Int("page", 2))

	logger.DebugContext(ctx, "searching")

	line := buff.String()

	for _, expected := range []string{"msg=searching", "engine=bing", "page=2"} {
		if !strings.Contains(line, expected) {
			t.Errorf("expected log line to contain %q, got %q", expected, line)
		}
	}
}

func TestContextHandlerWithoutAttrs(t *testing.T) {
	var buff bytes.Buffer

	logger := slog.New(ContextHandler{
		Handler: slog.NewTextHandler(&buff, nil),
	}).With(slog.String("component", "search"))

	logger.InfoContext(context.Background(), "done")

	if e, g := "component=search", buff.String(); !strings.Contains(g, e) {
		t.Errorf("expected log line to contain %q, got %q", e, g)
	}
}

func TestWithAttrsDoesNotAlias(t *testing.T) {
	base := WithAttrs(context.Background(), slog.String("a", "1"))

	first := WithAttrs(base, slog.String("b", "2"))
	second := WithAttrs(base, slog.String("c", "3"))

	if e, g := 2, len(Attrs(first)); e != g {
		t.Fatalf("len(Attrs(first)): expected %d, got %d", e, g)
	}

	if e, g := "b", Attrs(first)[1].Key; e != g {
		t.Errorf("Attrs(first)[1].Key: expected %q, got %q", e, g)
	}

	if e, g := "c", Attrs(second)[1].Key; e != g {
		t.Errorf("Attrs(second)[1].Key: expected %q, got %q", e, g)
	}
}
