/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package logging provides the structured logger used by the context
// subsystem. It is a thin wrapper over zap with a process-wide logger that
// defaults to a no-op: a tracing library must stay silent unless the
// embedding application opts in.
package logging

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level aliases the zap level type so callers need not import zapcore.
type Level = zapcore.Level

// WriteSyncer aliases the zap sink type for custom outputs.
type WriteSyncer = zapcore.WriteSyncer

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

// Constants for standard field key names.
const (
	ComponentKey = "component"
	LevelKey     = "level"
	MessageKey   = "message"
	TimeKey      = "time"
)

// globalLogger is the process-wide logger, swapped atomically so hot-path
// readers never lock.
var globalLogger atomic.Pointer[Logger]

func init() {
	globalLogger.Store(NewNop())
}

// SetGlobalLogger sets the global logger. Nil is ignored.
func SetGlobalLogger(l *Logger) {
	if l == nil {
		return
	}
	globalLogger.Store(l)
}

// Global returns the global logger.
func Global() *Logger {
	return globalLogger.Load()
}

// A Logger provides leveled, structured logging.
type Logger struct {
	sugared *zap.SugaredLogger
	level   zap.AtomicLevel
}

// New constructs a logger writing JSON to stderr at InfoLevel. The
// component argument is attached as the standard "component" field.
func New(component string) *Logger {
	return NewWithOutput(component, zapcore.Lock(os.Stderr))
}

// NewWithOutput constructs a logger writing to the given sink.
func NewWithOutput(component string, writer WriteSyncer) *Logger {
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     MessageKey,
		LevelKey:       LevelKey,
		TimeKey:        TimeKey,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	level := zap.NewAtomicLevelAt(InfoLevel)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, level)
	z := zap.New(core).With(zap.String(ComponentKey, component))
	return &Logger{sugared: z.Sugar(), level: level}
}

// NewNop constructs a logger that discards everything.
func NewNop() *Logger {
	return &Logger{
		sugared: zap.NewNop().Sugar(),
		level:   zap.NewAtomicLevelAt(zapcore.FatalLevel),
	}
}

// SetLevel changes the minimum enabled level.
func (l *Logger) SetLevel(lv Level) {
	l.level.SetLevel(lv)
}

// Enabled reports whether lv would be logged.
func (l *Logger) Enabled(lv Level) bool {
	return l.level.Enabled(lv)
}

// With returns a child logger with the given key/value pairs attached.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{sugared: l.sugared.With(keysAndValues...), level: l.level}
}

// Debug logs at DebugLevel with loosely-typed key/value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.sugared.Debugw(msg, keysAndValues...)
}

// Info logs at InfoLevel with loosely-typed key/value pairs.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.sugared.Infow(msg, keysAndValues...)
}

// Warn logs at WarnLevel with loosely-typed key/value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.sugared.Warnw(msg, keysAndValues...)
}

// Error logs at ErrorLevel with loosely-typed key/value pairs.
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.sugared.Errorw(msg, keysAndValues...)
}

// Flush writes any buffered log entries.
func (l *Logger) Flush() error {
	return l.sugared.Sync()
}
