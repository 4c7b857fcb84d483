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

	"github.com/rs/zerolog"
	"github.com/walteh/saveslot/pkg/log"
	"github.com/walteh/saveslot/pkg/profile"
	"gitlab.com/tozd/go/errors"
)

// 📊 Summary counts what a run did
type Summary struct {
	Profiles   int // Profiles fully processed
	Operations int // Operations executed
	Files      int // File deletes and copies reported
}

// 🏃 OperationRunner executes operations
type OperationRunner struct {
	console *log.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(console *log.Logger) *OperationRunner {
	return &OperationRunner{
		console: console,
	}
}

// 🏃 Run applies every operation to every profile, profiles first-to-last and
// operations in order. The first failure stops the run.
func (r *OperationRunner) Run(ctx context.Context, profiles []profile.Profile, ops []Operation) (Summary, error) {
	logger := zerolog.Ctx(ctx)
	var summary Summary

	for _, p := range profiles {
		r.console.StartProfile(ctx, log.ProfileOperation{Name: p.Name, Path: p.Path})

		for _, op := range ops {
			logger.Debug().Str("profile", p.Name).Str("operation", op.Name()).Msg("executing operation")

			if err := r.runSync(ctx, op, p); err != nil {
				summary.Files += r.console.EndProfile(ctx)
				return summary, errors.Errorf("profile %s: %s: %w", p.Name, op.Name(), err)
			}
			summary.Operations++
		}

		summary.Files += r.console.EndProfile(ctx)
		summary.Profiles++
	}

	return summary, nil
}

// 🔄 runSync runs an operation synchronously
func (r *OperationRunner) runSync(ctx context.Context, op Operation, p profile.Profile) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("operation cancelled: %w", err)
	}
	return op.Execute(ctx, p)
}
