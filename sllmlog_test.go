package pake

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandler_rendersTemplateArgs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelDebug))
	log.Info("run `cmd`", `cmd`, "echo hi")
	out := buf.String()
	if !strings.HasPrefix(out, "INFO") {
		t.Errorf("log line %q lacks level prefix", out)
	}
	if !strings.Contains(out, "echo hi") {
		t.Errorf("log line %q lacks the cmd argument", out)
	}
}

func TestHandler_level(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelInfo))
	log.Debug("invisible")
	if buf.Len() != 0 {
		t.Errorf("debug record passed info level: %q", buf.String())
	}
	log.Warn("visible")
	if buf.Len() == 0 {
		t.Error("warn record suppressed at info level")
	}
}

func TestHandler_withAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelDebug)).With(`target`, "app")
	log.Info("clean `target`")
	if !strings.Contains(buf.String(), "app") {
		t.Errorf("log line %q lacks the carried attribute", buf.String())
	}
}
