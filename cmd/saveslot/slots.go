package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/saveslot/pkg/log"
	"github.com/walteh/saveslot/pkg/report"
	"github.com/walteh/saveslot/pkg/slot"
	"github.com/walteh/saveslot/pkg/transfer"
	"gitlab.com/tozd/go/errors"
)

// newSlotsCmd creates the command listing every profile's slots
func newSlotsCmd(rf *rootFlags, e env) *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List the slots of every profile, newest first",
		Long: `Slots prints one row per slot with its recency rank, the number used by
--load-nth-newest-slot and --delete-nth-newest-slot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, o, err := newRootOpts(cmd.Context(), rf, e)
			if err != nil {
				return err
			}

			profiles, ok, err := discoverProfiles(ctx, o, rf)
			if err != nil || !ok {
				return err
			}

			slots := slot.NewManager(o.Config.SlotsDir)
			saves := transfer.New(o.Config.SaveFileMatcher(), transfer.ModeCopy, o.Console)

			var rows []report.SlotRow
			for _, p := range profiles {
				list, err := slots.List(ctx, p.Path)
				if err != nil {
					return errors.Errorf("profile %s: %w", p.Name, err)
				}
				for rank, s := range list {
					files, err := saves.ListSaveFiles(ctx, s.Path)
					if err != nil {
						return errors.Errorf("profile %s: slot %s: %w", p.Name, s.Name, err)
					}
					rows = append(rows, report.SlotRow{Profile: p.Name, Rank: rank, Slot: s, SaveFiles: len(files)})
				}
			}

			if len(rows) == 0 {
				o.UserLogger.LogNotice("No slots yet")
				return nil
			}

			table, err := report.SlotTable(rows)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)

			log.FromContext(ctx).Infof("%d slot(s) in %d profile(s)", len(rows), len(profiles))
			return nil
		},
	}
}
