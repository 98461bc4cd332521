package report

import (
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/superfix/pkg/patch"
)

// 📢 UserFeedback provides user-friendly console output for the
// status command, outside of the report contract lines.
type UserFeedback struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserFeedback creates a new user feedback printer
func NewUserFeedback(log zerolog.Logger) *UserFeedback {
	return &UserFeedback{log: log}
}

// 📝 FileCheck prints the dry-run status of a single target
func (u *UserFeedback) FileCheck(res patch.FileResult) {
	switch res.Outcome {
	case patch.OutcomeFixed:
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⟳"}).Printfln("%s needs fixing (%d call sites)", res.Path, res.Replacements)
		u.log.Info().Str("path", res.Path).Int("replacements", res.Replacements).Msg("target needs fixing")
	case patch.OutcomeUnchanged:
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✓"}).Printfln("%s is clean", res.Path)
		u.log.Info().Str("path", res.Path).Msg("target clean")
	case patch.OutcomeSkipped:
		pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭"}).Printfln("%s not found", res.Path)
		u.log.Warn().Str("path", res.Path).Msg("target not found")
	case patch.OutcomeFailed:
		pterm.Error.WithPrefix(pterm.Prefix{Text: "✗"}).Printfln("%s failed", res.Path)
		pterm.Error.Println(res.Err)
		u.log.Error().Str("path", res.Path).Err(res.Err).Msg("target check failed")
	}
}

// 📊 BatchCheck prints the dry-run status of a whole batch
func (u *UserFeedback) BatchCheck(s *patch.Summary) {
	for _, res := range s.Results {
		u.FileCheck(res)
	}
	if s.Fixed > 0 {
		pterm.Warning.Printfln("%d of %d files need fixing", s.Fixed, len(s.Results))
	} else {
		pterm.Success.Printfln("all %d files are clean", len(s.Results))
	}
}

// 🔍 Validation logs a validation result with an error cause
func (u *UserFeedback) Validation(valid bool, description string, err error) {
	if valid {
		pterm.Success.Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
	} else {
		pterm.Warning.Println(description)
		u.log.Warn().Msg(description)
	}
}
