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

package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/saveslot/pkg/slot"
	"gitlab.com/tozd/go/errors"
)

func TestSlotTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	when := time.Date(2024, 2, 3, 4, 5, 6, 0, time.Local)
	out, err := SlotTable([]SlotRow{
		{Profile: "player1", Rank: 0, Slot: slot.Slot{Name: "before-heist", ModTime: when}, SaveFiles: 2},
		{Profile: "player1", Rank: 1, Slot: slot.Slot{Name: "dated-2024-01-01_000000", ModTime: when.Add(-time.Hour)}, SaveFiles: 0},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "header plus one line per slot")
	assert.Contains(t, lines[0], "Profile")
	assert.Contains(t, lines[0], "Save files")
	assert.Contains(t, lines[1], "before-heist")
	assert.Contains(t, lines[1], "2024-02-03 04:05:06")
	assert.Contains(t, lines[2], "dated-2024-01-01_000000")
	assert.Contains(t, lines[2], "2024-02-03 03:05:06")
}

func TestUserLogger(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	buf := &bytes.Buffer{}
	u := NewUserLogger(buf, zerolog.New(zerolog.NewTestWriter(t)))

	u.LogSuccess("processed 2 profiles", 1500*time.Microsecond)
	u.LogNotice("Missing profile directory: /x")
	u.LogFailure("run failed", errors.New("disk on fire"))

	out := buf.String()
	assert.Contains(t, out, "processed 2 profiles (2ms)")
	assert.Contains(t, out, "Missing profile directory: /x")
	assert.Contains(t, out, "run failed")
	assert.Contains(t, out, "disk on fire")
}
