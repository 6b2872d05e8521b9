// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log is a thin layer over go-ethereum's slog based logger.
// Package level loggers created by WithContext bind to the root logger lazily,
// so that SetDefault called from main also applies to them.
package log

import (
	"context"
	"io"
	"log/slog"
	"sync"

	ethlog "github.com/ethereum/go-ethereum/log"
)

// Logger writes key/value pairs to a Handler.
type Logger = ethlog.Logger

const (
	LevelTrace = ethlog.LevelTrace
	LevelDebug = ethlog.LevelDebug
	LevelInfo  = ethlog.LevelInfo
	LevelWarn  = ethlog.LevelWarn
	LevelError = ethlog.LevelError
	LevelCrit  = ethlog.LevelCrit
)

// Root returns the root logger.
func Root() Logger {
	return ethlog.Root()
}

// SetDefault sets the root logger.
func SetDefault(l Logger) {
	ethlog.SetDefault(l)
}

// NewLogger returns a logger writing to h.
func NewLogger(h slog.Handler) Logger {
	return ethlog.NewLogger(h)
}

// FromLegacyLevel converts the 0(crit)..5(trace) verbosity into a level.
func FromLegacyLevel(lvl int) slog.Level {
	return ethlog.FromLegacyLevel(lvl)
}

// TerminalHandler returns a human readable handler emitting every level.
func TerminalHandler(w io.Writer, useColor bool) slog.Handler {
	return ethlog.NewTerminalHandlerWithLevel(w, LevelTrace, useColor)
}

// JSONHandler returns a handler writing one json object per record, emitting every level.
func JSONHandler(w io.Writer) slog.Handler {
	return ethlog.JSONHandlerWithLevel(w, LevelTrace)
}

// WithContext returns a logger carrying ctx, bound to whatever the root logger is at use time.
func WithContext(ctx ...any) Logger {
	return &lazyLogger{ctx: ctx}
}

func Trace(msg string, ctx ...any) { Root().Write(LevelTrace, msg, ctx...) }
func Debug(msg string, ctx ...any) { Root().Write(LevelDebug, msg, ctx...) }
func Info(msg string, ctx ...any)  { Root().Write(LevelInfo, msg, ctx...) }
func Warn(msg string, ctx ...any)  { Root().Write(LevelWarn, msg, ctx...) }
func Error(msg string, ctx ...any) { Root().Write(LevelError, msg, ctx...) }
func Crit(msg string, ctx ...any)  { Root().Crit(msg, ctx...) }

type lazyLogger struct {
	ctx []any

	mu    sync.Mutex
	root  Logger
	bound Logger
}

func (l *lazyLogger) logger() Logger {
	root := ethlog.Root()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.bound == nil || l.root != root {
		l.root = root
		l.bound = root.With(l.ctx...)
	}
	return l.bound
}

func (l *lazyLogger) With(ctx ...any) Logger {
	return WithContext(append(append([]any{}, l.ctx...), ctx...)...)
}

func (l *lazyLogger) New(ctx ...any) Logger {
	return l.With(ctx...)
}

func (l *lazyLogger) Log(level slog.Level, msg string, ctx ...any) {
	l.logger().Write(level, msg, ctx...)
}

func (l *lazyLogger) Write(level slog.Level, msg string, attrs ...any) {
	l.logger().Write(level, msg, attrs...)
}

func (l *lazyLogger) Trace(msg string, ctx ...any) { l.logger().Write(LevelTrace, msg, ctx...) }
func (l *lazyLogger) Debug(msg string, ctx ...any) { l.logger().Write(LevelDebug, msg, ctx...) }
func (l *lazyLogger) Info(msg string, ctx ...any)  { l.logger().Write(LevelInfo, msg, ctx...) }
func (l *lazyLogger) Warn(msg string, ctx ...any)  { l.logger().Write(LevelWarn, msg, ctx...) }
func (l *lazyLogger) Error(msg string, ctx ...any) { l.logger().Write(LevelError, msg, ctx...) }
func (l *lazyLogger) Crit(msg string, ctx ...any)  { l.logger().Crit(msg, ctx...) }

func (l *lazyLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.logger().Enabled(ctx, level)
}

func (l *lazyLogger) Handler() slog.Handler {
	return l.logger().Handler()
}
