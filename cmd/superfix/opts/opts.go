package opts

import (
	"github.com/walteh/superfix/pkg/config"
	"github.com/walteh/superfix/pkg/fileman"
	"github.com/walteh/superfix/pkg/report"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config   *config.Config
	Files    *fileman.Manager
	Reporter *report.Reporter
	Feedback *report.UserFeedback
}
