// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 Action is the kind of file operation being reported
type Action string

const (
	ActionCopy   Action = "copy"
	ActionMove   Action = "move"
	ActionDelete Action = "delete"
)

// 🎯 FileOperation represents a file operation for logging
type FileOperation struct {
	Action      Action // What happened to the file
	Source      string // File acted on
	Destination string // Target path, empty for deletes
}

// 📦 ProfileOperation represents one profile being processed
type ProfileOperation struct {
	Name string // Profile directory name
	Path string // Profile directory path
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentOp  *ProfileOperation
	operations []FileOperation
}

// 🏭 NewWithZerolog creates a logger that mirrors console lines into zlog
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	switch op.Action {
	case ActionDelete:
		return fmt.Sprintf("%s %s", color.New(color.FgRed).Sprint("delete:"), op.Source)
	case ActionMove:
		return fmt.Sprintf("%s %s %s", op.Source, color.New(color.FgYellow).Sprint("=>"), op.Destination)
	default:
		return fmt.Sprintf("%s %s %s", op.Source, color.New(color.FgGreen).Sprint("->"), op.Destination)
	}
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	l.zlog.Debug().
		Str("action", string(op.Action)).
		Str("source", op.Source).
		Str("destination", op.Destination).
		Msg("file operation")
}

// 📝 StartProfile starts reporting for a profile
func (l *Logger) StartProfile(ctx context.Context, op ProfileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil

	fmt.Fprintf(l.console, "%s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Name),
		color.New(color.Faint).Sprint(op.Path))

	l.zlog.Info().
		Str("profile", op.Name).
		Str("path", op.Path).
		Msg("processing profile")
}

// 📝 EndProfile ends the current profile and returns how many file operations it logged
func (l *Logger) EndProfile(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return 0
	}

	n := len(l.operations)
	l.zlog.Info().
		Str("profile", l.currentOp.Name).
		Int("files", n).
		Msg("profile complete")

	l.currentOp = nil
	l.operations = nil
	return n
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgYellow).Sprint("warning:"), msg)
	l.zlog.Warn().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
