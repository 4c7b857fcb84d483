package main

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/saveslot/cmd/saveslot/opts"
	"github.com/walteh/saveslot/pkg/config"
	"github.com/walteh/saveslot/pkg/log"
	"github.com/walteh/saveslot/pkg/profile"
	"github.com/walteh/saveslot/pkg/report"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the flags shared by every command
type rootFlags struct {
	configFile  string
	debug       bool
	profileName string
}

// env is what the process hands to the commands
type env struct {
	stdout io.Writer
	stderr io.Writer
	lookup func(string) (string, bool)
	now    func() time.Time
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, f *rootFlags) {
	cmd.PersistentFlags().StringVarP(&f.configFile, "config", "c", "", "config file path (.yaml, .json, .hcl or .toml)")
	cmd.PersistentFlags().BoolVarP(&f.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&f.profileName, "profile", "", "only act on the profile with this directory name")
}

// setupLogging configures zerolog based on flags
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

// newRootOpts loads the config and resolves the profile layout. The returned
// context carries the zerolog logger.
func newRootOpts(ctx context.Context, f *rootFlags, e env) (context.Context, *opts.RootOpts, error) {
	zlog := setupLogging(e.stderr, f.debug)
	ctx = zlog.WithContext(ctx)

	console := log.NewWithZerolog(e.stdout, zlog)
	ctx = log.NewContext(ctx, console)

	cfg, err := config.Load(ctx, f.configFile)
	if err != nil {
		return ctx, nil, errors.Errorf("loading config: %w", err)
	}

	layout, err := profile.ResolveLayout(e.lookup, cfg.HomeEnv, cfg.BaseDir, cfg.ProfilesDir)
	if err != nil {
		return ctx, nil, errors.Errorf("resolving profile layout: %w", err)
	}

	zlog.Debug().Str("config", cfg.String()).Str("base", layout.Base).Msg("resolved layout")

	return ctx, &opts.RootOpts{
		Config:     cfg,
		Layout:     layout,
		Console:    console,
		UserLogger: report.NewUserLogger(e.stdout, zlog),
		Now:        e.now,
	}, nil
}

// discoverProfiles lists the profiles to act on. The bool is false when the
// profiles directory is missing, which has already been reported to the user.
func discoverProfiles(ctx context.Context, o *opts.RootOpts, f *rootFlags) ([]profile.Profile, bool, error) {
	profiles, err := o.Layout.Discover(ctx)
	if err != nil {
		if errors.Is(err, profile.ErrNoProfiles) {
			o.UserLogger.LogNotice("Missing profile directory: " + o.Layout.Base)
			return nil, false, nil
		}
		return nil, false, errors.Errorf("discovering profiles: %w", err)
	}

	profiles, err = profile.Filter(profiles, f.profileName)
	if err != nil {
		return nil, false, err
	}
	return profiles, true, nil
}
