package pake

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"git.fractalqb.de/fractalqb/sllm/v3"
)

// Handler is a minimal [slog.Handler] that renders records with sllm's
// backquote template syntax, e.g. the message "run `cmd`" picks up the value
// of the cmd attribute. Attributes not referenced by the message template are
// dropped.
type Handler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
}

var _ slog.Handler = (*Handler)(nil)

func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{mu: new(sync.Mutex), w: w, level: level}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	args := make(sllmArgs, 0, len(h.attrs)+rec.NumAttrs())
	for _, a := range h.attrs {
		args = append(args, a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		args = append(args, a)
		return true
	})
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%-5s ", rec.Level)
	sllm.Fprint(&buf, rec.Message, args.append)
	buf.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append(slices.Clip(h.attrs), attrs...)
	return &h2
}

// WithGroup returns h unchanged; pake's own logging does not use groups.
func (h *Handler) WithGroup(string) slog.Handler { return h }

type sllmArgs []any

func (as sllmArgs) append(buf []byte, _ int, n string) ([]byte, error) {
	for len(as) > 0 {
		switch k := as[0].(type) {
		case string:
			if len(as) == 1 {
				return buf, fmt.Errorf("no value for key '%s'", n)
			}
			if k == n {
				return sllm.AppendArg(buf, as[1]), nil
			}
			as = as[2:]
		case slog.Attr:
			if k.Key == n {
				return sllm.AppendArg(buf, k.Value), nil
			}
			as = as[1:]
		default:
			return buf, fmt.Errorf("illegal key type %T", k)
		}
	}
	return buf, fmt.Errorf("no key '%s'", n)
}
