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

	"github.com/walteh/saveslot/pkg/profile"
	"gitlab.com/tozd/go/errors"
)

// 🧹 NewClearProfileOperation creates a new clear-profile operation
func NewClearProfileOperation(opts Options) Operation {
	return &clearProfileOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 🧹 clearProfileOperation removes the save files directly under a profile
type clearProfileOperation struct {
	BaseOperation
}

func (op *clearProfileOperation) Name() string { return "clear-profile" }

// 🏃 Execute runs the clear operation
func (op *clearProfileOperation) Execute(ctx context.Context, p profile.Profile) error {
	if err := op.Transferer.DeleteSaveFiles(ctx, p.Path); err != nil {
		return errors.Errorf("clearing profile: %w", err)
	}
	return nil
}
