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

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/saveslot/pkg/operation"
	"github.com/walteh/saveslot/pkg/report"
	"github.com/walteh/saveslot/pkg/slot"
	"github.com/walteh/saveslot/pkg/transfer"
	"gitlab.com/tozd/go/errors"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], env{
		stdout: os.Stdout,
		stderr: os.Stderr,
		lookup: os.LookupEnv,
		now:    time.Now,
	}))
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, e env) int {
	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		report.NewUserLogger(e.stderr, zerolog.Nop()).LogFailure("saveslot failed", err)
		return 1
	}
	return 0
}

// transferFlags are the flags selecting what to do with each profile
type transferFlags struct {
	save            string
	load            string
	loadSaveFile    string
	saveDated       bool
	clearProfile    bool
	loadNthNewest   int
	deleteNthNewest int
}

// request builds the operation request. A flag given explicitly with an empty
// value is an error rather than being treated as absent.
func (t *transferFlags) request(cmd *cobra.Command) (operation.Request, error) {
	for _, f := range []struct{ name, value string }{
		{"save", t.save},
		{"load", t.load},
		{"load-save-file", t.loadSaveFile},
	} {
		if cmd.Flags().Changed(f.name) && f.value == "" {
			return operation.Request{}, errors.Errorf("--%s needs a non-empty value", f.name)
		}
	}

	req := operation.Request{
		Save:         t.save,
		Load:         t.load,
		LoadSaveFile: t.loadSaveFile,
		SaveDated:    t.saveDated,
		ClearProfile: t.clearProfile,
	}
	if cmd.Flags().Changed("load-nth-newest-slot") {
		n := t.loadNthNewest
		req.LoadNthNewest = &n
	}
	if cmd.Flags().Changed("delete-nth-newest-slot") {
		n := t.deleteNthNewest
		req.DeleteNthNewest = &n
	}
	return req, req.Validate()
}

func newRootCmd(e env) *cobra.Command {
	rf := &rootFlags{}
	tf := &transferFlags{}

	cmd := &cobra.Command{
		Use:   "saveslot",
		Short: "Manages GTA V save files",
		Long: `saveslot keeps snapshots of a game's save files in named slots.

Every flag is applied to every profile found under the profiles directory, in
this order: --save, --load, --load-save-file, --save-dated, --clear-profile,
--load-nth-newest-slot, --delete-nth-newest-slot.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := tf.request(cmd)
			if err != nil {
				return errors.Errorf("invalid flags: %w", err)
			}

			ctx, o, err := newRootOpts(cmd.Context(), rf, e)
			if err != nil {
				return err
			}

			if req.Empty() {
				o.UserLogger.LogNotice("Nothing to do, see --help")
				return nil
			}

			profiles, ok, err := discoverProfiles(ctx, o, rf)
			if err != nil || !ok {
				return err
			}

			opts := operation.Options{
				Transferer:   transfer.New(o.Config.SaveFileMatcher(), o.Config.TransferMode(), o.Console),
				Slots:        slot.NewManager(o.Config.SlotsDir),
				Console:      o.Console,
				SaveFilesDir: o.Config.SaveFilesDir,
				DatedPrefix:  o.Config.DatedPrefix,
				DatedLayout:  o.Config.DatedLayout,
				Now:          o.Now,
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			start := o.Now()
			summary, err := operation.NewRunner(o.Console).Run(ctx, profiles, operation.Build(opts, req))
			if err != nil {
				return err
			}

			o.UserLogger.LogSuccess(fmt.Sprintf("processed %d profile(s), %d operation(s), %d file operation(s)", summary.Profiles, summary.Operations, summary.Files), o.Now().Sub(start))
			return nil
		},
	}

	addRootFlags(cmd, rf)

	flags := cmd.Flags()
	flags.StringVar(&tf.save, "save", "", "save the current save files in the given `slot`")
	flags.StringVar(&tf.load, "load", "", "load the save files of the given `slot`")
	flags.StringVar(&tf.loadSaveFile, "load-save-file", "", "load the greatest-named directory under \"Save Files\" whose name contains `name`")
	flags.BoolVar(&tf.saveDated, "save-dated", false, "save the current save files in a slot named after the current time")
	flags.BoolVar(&tf.clearProfile, "clear-profile", false, "remove the current save files")
	flags.IntVar(&tf.loadNthNewest, "load-nth-newest-slot", 0, "load the `nth` most recently modified slot (0 is the newest)")
	flags.IntVar(&tf.deleteNthNewest, "delete-nth-newest-slot", 0, "delete the `nth` most recently modified slot (0 is the newest)")

	cmd.AddCommand(
		newSlotsCmd(rf, e),
		newVersionCmd(),
	)

	return cmd
}
