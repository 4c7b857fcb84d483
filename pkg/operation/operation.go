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
	"time"

	"github.com/walteh/saveslot/pkg/log"
	"github.com/walteh/saveslot/pkg/profile"
	"github.com/walteh/saveslot/pkg/slot"
	"github.com/walteh/saveslot/pkg/transfer"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is one action applied to a profile
type Operation interface {
	// Name identifies the operation in errors and logs
	Name() string
	// Execute applies the operation to p
	Execute(ctx context.Context, p profile.Profile) error
}

// 🔧 Options contains what operations need to do their work
type Options struct {
	// Transferer copies and deletes save files
	Transferer *transfer.Transferer
	// Slots resolves slot directories
	Slots *slot.Manager
	// Console receives user facing messages
	Console *log.Logger
	// SaveFilesDir is the directory under a profile searched by load-save-file
	SaveFilesDir string
	// DatedPrefix and DatedLayout name the slots made by save-dated
	DatedPrefix string
	DatedLayout string
	// Now returns the current time, time.Now when nil
	Now func() time.Time
}

// Validate checks that the required collaborators are set.
func (o Options) Validate() error {
	if o.Transferer == nil {
		return errors.Errorf("transferer is required")
	}
	if o.Slots == nil {
		return errors.Errorf("slot manager is required")
	}
	if o.Console == nil {
		return errors.Errorf("console is required")
	}
	return nil
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// 🧱 BaseOperation holds the options shared by every operation
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{Options: opts}
}

// 📨 Request is the set of operations asked for on the command line. Unset
// fields are skipped.
type Request struct {
	Save            string
	Load            string
	LoadSaveFile    string
	SaveDated       bool
	ClearProfile    bool
	LoadNthNewest   *int
	DeleteNthNewest *int
}

// Empty reports whether nothing was requested.
func (r Request) Empty() bool {
	return r.Save == "" &&
		r.Load == "" &&
		r.LoadSaveFile == "" &&
		!r.SaveDated &&
		!r.ClearProfile &&
		r.LoadNthNewest == nil &&
		r.DeleteNthNewest == nil
}

// Validate rejects values no operation can act on.
func (r Request) Validate() error {
	for _, name := range []string{r.Save, r.Load} {
		if name == "" {
			continue
		}
		if err := slot.ValidateName(name); err != nil {
			return err
		}
	}
	if r.LoadNthNewest != nil && *r.LoadNthNewest < 0 {
		return errors.Errorf("load-nth-newest-slot must not be negative, got %d", *r.LoadNthNewest)
	}
	if r.DeleteNthNewest != nil && *r.DeleteNthNewest < 0 {
		return errors.Errorf("delete-nth-newest-slot must not be negative, got %d", *r.DeleteNthNewest)
	}
	return nil
}

// 🏗️ Build returns the operations of req in execution order
func Build(opts Options, req Request) []Operation {
	var ops []Operation

	if req.Save != "" {
		ops = append(ops, NewSaveOperation(opts, req.Save))
	}
	if req.Load != "" {
		ops = append(ops, NewLoadOperation(opts, req.Load))
	}
	if req.LoadSaveFile != "" {
		ops = append(ops, NewLoadSaveFileOperation(opts, req.LoadSaveFile))
	}
	if req.SaveDated {
		ops = append(ops, NewSaveDatedOperation(opts))
	}
	if req.ClearProfile {
		ops = append(ops, NewClearProfileOperation(opts))
	}
	if req.LoadNthNewest != nil {
		ops = append(ops, NewLoadNthNewestOperation(opts, *req.LoadNthNewest))
	}
	if req.DeleteNthNewest != nil {
		ops = append(ops, NewDeleteNthNewestOperation(opts, *req.DeleteNthNewest))
	}

	return ops
}
