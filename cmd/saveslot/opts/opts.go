package opts

import (
	"time"

	"github.com/walteh/saveslot/pkg/config"
	"github.com/walteh/saveslot/pkg/log"
	"github.com/walteh/saveslot/pkg/profile"
	"github.com/walteh/saveslot/pkg/report"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	Layout     *profile.Layout
	Console    *log.Logger
	UserLogger *report.UserLogger
	Now        func() time.Time
}
