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

// Package transfer copies, moves and deletes save files between directories.
//
// A transfer always clears the destination's save files first, so after a
// successful transfer the destination holds exactly the source's save files.
// Any I/O error aborts immediately; files already handled stay as they are.
package transfer

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/saveslot/pkg/log"
	"github.com/walteh/saveslot/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 🔀 Mode selects what happens to the source after a transfer
type Mode string

const (
	// ModeCopy leaves the source files in place
	ModeCopy Mode = "copy"
	// ModeMove removes each source file once its copy is written
	ModeMove Mode = "move"
)

// ParseMode parses a mode name. Empty means ModeCopy.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeCopy:
		return ModeCopy, nil
	case ModeMove:
		return ModeMove, nil
	}
	return "", errors.Errorf("unknown transfer mode %q (want copy or move)", s)
}

// 🚚 Transferer moves save files around
type Transferer struct {
	// Matcher identifies save files by name
	Matcher scan.NameMatcher
	// Mode is copy or move
	Mode Mode
	// Console receives one line per delete and per copy
	Console *log.Logger
}

// 🏭 New creates a transferer
func New(matcher scan.NameMatcher, mode Mode, console *log.Logger) *Transferer {
	return &Transferer{
		Matcher: matcher,
		Mode:    mode,
		Console: console,
	}
}

// ListSaveFiles returns the save files directly under dir.
func (t *Transferer) ListSaveFiles(ctx context.Context, dir string) ([]scan.Entry, error) {
	return scan.Find(ctx, dir, scan.File, t.Matcher)
}

// 🗑️ DeleteSaveFiles removes every save file directly under dir
func (t *Transferer) DeleteSaveFiles(ctx context.Context, dir string) error {
	files, err := t.ListSaveFiles(ctx, dir)
	if err != nil {
		return errors.Errorf("listing save files: %w", err)
	}

	for _, f := range files {
		t.Console.LogFileOperation(ctx, log.FileOperation{
			Action: log.ActionDelete,
			Source: f.Path,
		})
		if err := os.Remove(f.Path); err != nil {
			return errors.Errorf("deleting %s: %w", f.Path, err)
		}
	}

	return nil
}

// 🚚 Transfer replaces the save files in to with the save files of from
func (t *Transferer) Transfer(ctx context.Context, from, to string) error {
	same, err := samePath(from, to)
	if err != nil {
		return err
	}
	if same {
		return errors.Errorf("source and destination are the same directory: %s", from)
	}

	zerolog.Ctx(ctx).Debug().
		Str("from", from).
		Str("to", to).
		Str("mode", string(t.Mode)).
		Msg("transferring save files")

	if err := t.DeleteSaveFiles(ctx, to); err != nil {
		return errors.Errorf("clearing destination: %w", err)
	}

	files, err := t.ListSaveFiles(ctx, from)
	if err != nil {
		return errors.Errorf("listing source save files: %w", err)
	}

	action := log.ActionCopy
	if t.Mode == ModeMove {
		action = log.ActionMove
	}

	for _, f := range files {
		dest := filepath.Join(to, f.Name)

		t.Console.LogFileOperation(ctx, log.FileOperation{
			Action:      action,
			Source:      f.Path,
			Destination: dest,
		})

		if err := CopyFile(f.Path, dest); err != nil {
			return errors.Errorf("copying %s: %w", f.Path, err)
		}

		if t.Mode == ModeMove {
			if err := os.Remove(f.Path); err != nil {
				return errors.Errorf("removing moved source %s: %w", f.Path, err)
			}
		}
	}

	return nil
}

// TempPath is where CopyFile stages dst before renaming it into place.
func TempPath(dst string) string {
	return filepath.Join(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp")
}

// 📋 CopyFile copies src to dst through a hidden temp file and rename, keeping
// the source permissions. An existing dst is replaced. The temp file is named
// ".<dst name>.tmp" so a leftover never matches a save-file prefix.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Errorf("reading source info: %w", err)
	}

	tempPath := TempPath(dst)
	out, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, dst); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// samePath reports whether a and b name the same directory, following symlinks.
// A missing path is never the same as anything.
func samePath(a, b string) (bool, error) {
	infoA, err := os.Stat(a)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Errorf("checking %s: %w", a, err)
	}
	infoB, err := os.Stat(b)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Errorf("checking %s: %w", b, err)
	}
	return os.SameFile(infoA, infoB), nil
}
