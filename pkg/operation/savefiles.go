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

package operation

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/walteh/saveslot/pkg/profile"
	"github.com/walteh/saveslot/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 📂 NewLoadSaveFileOperation loads a directory from the profile's save-file
// archive, chosen by a name fragment
func NewLoadSaveFileOperation(opts Options, fragment string) Operation {
	return &loadSaveFileOperation{BaseOperation: NewBaseOperation(opts), fragment: fragment}
}

type loadSaveFileOperation struct {
	BaseOperation
	fragment string
}

func (op *loadSaveFileOperation) Name() string { return "load-save-file " + op.fragment }

func (op *loadSaveFileOperation) Execute(ctx context.Context, p profile.Profile) error {
	archive := filepath.Join(p.Path, op.SaveFilesDir)

	matches, err := scan.Find(ctx, archive, scan.Dir, scan.Contains(op.fragment))
	if err != nil {
		return errors.Errorf("searching save files: %w", err)
	}
	if len(matches) == 0 {
		op.Console.Infof("no save file matching %q in profile %s", op.fragment, p.Name)
		return nil
	}

	// the greatest name wins
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name > matches[j].Name })
	chosen := matches[0]

	zerolog.Ctx(ctx).Debug().
		Str("fragment", op.fragment).
		Str("chosen", chosen.Name).
		Int("candidates", len(matches)).
		Msg("selected save file directory")

	if err := op.Transferer.Transfer(ctx, chosen.Path, p.Path); err != nil {
		return errors.Errorf("loading save file %s: %w", chosen.Name, err)
	}
	return nil
}
