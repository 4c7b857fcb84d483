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

// Package report renders run results and slot listings for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/saveslot/pkg/slot"
	"gitlab.com/tozd/go/errors"
)

const timeLayout = "2006-01-02 15:04:05"

// 🗂️ SlotRow is one line of the slot listing
type SlotRow struct {
	Profile   string
	Rank      int
	Slot      slot.Slot
	SaveFiles int
}

// 📋 SlotTable renders rows as a table with a header
func SlotTable(rows []SlotRow) (string, error) {
	data := pterm.TableData{{"Profile", "Rank", "Slot", "Modified", "Save files"}}
	for _, r := range rows {
		data = append(data, []string{
			r.Profile,
			strconv.Itoa(r.Rank),
			r.Slot.Name,
			r.Slot.ModTime.Local().Format(timeLayout),
			strconv.Itoa(r.SaveFiles),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering slot table: %w", err)
	}
	return out, nil
}

// 📢 UserLogger prints the outcome of a run
type UserLogger struct {
	log zerolog.Logger
	out io.Writer
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(out io.Writer, log zerolog.Logger) *UserLogger {
	return &UserLogger{log: log, out: out}
}

// ✅ LogSuccess reports a finished run
func (u *UserLogger) LogSuccess(description string, elapsed time.Duration) {
	msg := fmt.Sprintf("%s (%s)", description, elapsed.Round(time.Millisecond))
	pterm.Success.WithWriter(u.out).WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
	u.log.Info().Dur("elapsed", elapsed).Msg(description)
}

// ❌ LogFailure reports a failed run
func (u *UserLogger) LogFailure(description string, err error) {
	pterm.Error.WithWriter(u.out).WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
	pterm.Error.WithWriter(u.out).Println(err)
	u.log.Error().Err(err).Msg(description)
}

// 📦 LogNotice reports something benign worth telling the user
func (u *UserLogger) LogNotice(description string) {
	pterm.Info.WithWriter(u.out).WithPrefix(pterm.Prefix{Text: "📦"}).Println(description)
	u.log.Info().Msg(description)
}
