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
	"github.com/walteh/saveslot/pkg/slot"
	"gitlab.com/tozd/go/errors"
)

// 💾 NewSaveOperation copies the profile's save files into the named slot
func NewSaveOperation(opts Options, name string) Operation {
	return &saveOperation{BaseOperation: NewBaseOperation(opts), slot: name}
}

type saveOperation struct {
	BaseOperation
	slot string
}

func (op *saveOperation) Name() string { return "save " + op.slot }

func (op *saveOperation) Execute(ctx context.Context, p profile.Profile) error {
	dir, err := op.Slots.Ensure(ctx, p.Path, op.slot)
	if err != nil {
		return err
	}
	if err := op.Transferer.Transfer(ctx, p.Path, dir); err != nil {
		return errors.Errorf("saving to slot: %w", err)
	}
	return nil
}

// 📥 NewLoadOperation replaces the profile's save files with the named slot's
func NewLoadOperation(opts Options, name string) Operation {
	return &loadOperation{BaseOperation: NewBaseOperation(opts), slot: name}
}

type loadOperation struct {
	BaseOperation
	slot string
}

func (op *loadOperation) Name() string { return "load " + op.slot }

func (op *loadOperation) Execute(ctx context.Context, p profile.Profile) error {
	dir, err := op.Slots.Ensure(ctx, p.Path, op.slot)
	if err != nil {
		return err
	}

	files, err := op.Transferer.ListSaveFiles(ctx, dir)
	if err != nil {
		return errors.Errorf("listing slot: %w", err)
	}
	if len(files) == 0 {
		op.Console.Warningf("slot %s of profile %s has no save files, the profile will be cleared", op.slot, p.Name)
	}

	if err := op.Transferer.Transfer(ctx, dir, p.Path); err != nil {
		return errors.Errorf("loading from slot: %w", err)
	}
	return nil
}

// 🕒 NewSaveDatedOperation saves into a new slot named after the current time
func NewSaveDatedOperation(opts Options) Operation {
	return &saveDatedOperation{BaseOperation: NewBaseOperation(opts)}
}

type saveDatedOperation struct {
	BaseOperation
}

func (op *saveDatedOperation) Name() string { return "save-dated" }

func (op *saveDatedOperation) Execute(ctx context.Context, p profile.Profile) error {
	name := slot.DatedName(op.now(), op.DatedPrefix, op.DatedLayout)
	return NewSaveOperation(op.Options, name).Execute(ctx, p)
}

// 🥇 NewLoadNthNewestOperation loads the slot at recency rank n
func NewLoadNthNewestOperation(opts Options, n int) Operation {
	return &loadNthNewestOperation{BaseOperation: NewBaseOperation(opts), rank: n}
}

type loadNthNewestOperation struct {
	BaseOperation
	rank int
}

func (op *loadNthNewestOperation) Name() string { return "load-nth-newest-slot" }

func (op *loadNthNewestOperation) Execute(ctx context.Context, p profile.Profile) error {
	s, ok, err := op.Slots.NthNewest(ctx, p.Path, op.rank)
	if err != nil {
		return errors.Errorf("finding slot: %w", err)
	}
	if !ok {
		op.Console.Infof("profile %s has no slot at rank %d", p.Name, op.rank)
		return nil
	}

	if err := op.Transferer.Transfer(ctx, s.Path, p.Path); err != nil {
		return errors.Errorf("loading slot %s: %w", s.Name, err)
	}
	return nil
}

// 🗑️ NewDeleteNthNewestOperation deletes the slot at recency rank n
func NewDeleteNthNewestOperation(opts Options, n int) Operation {
	return &deleteNthNewestOperation{BaseOperation: NewBaseOperation(opts), rank: n}
}

type deleteNthNewestOperation struct {
	BaseOperation
	rank int
}

func (op *deleteNthNewestOperation) Name() string { return "delete-nth-newest-slot" }

func (op *deleteNthNewestOperation) Execute(ctx context.Context, p profile.Profile) error {
	s, ok, err := op.Slots.NthNewest(ctx, p.Path, op.rank)
	if err != nil {
		return errors.Errorf("finding slot: %w", err)
	}
	if !ok {
		op.Console.Infof("profile %s has no slot at rank %d", p.Name, op.rank)
		return nil
	}

	if err := op.Transferer.DeleteSaveFiles(ctx, s.Path); err != nil {
		return errors.Errorf("deleting slot %s: %w", s.Name, err)
	}

	// anything other than save files left in the slot keeps the directory alive
	if err := op.Slots.Remove(ctx, s.Path); err != nil {
		op.Console.Warningf("Failed to remove directory: %v", err)
	}
	return nil
}
