package recalc

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/glentakahashi/spt-pityloot/internal/model/types"
	"github.com/glentakahashi/spt-pityloot/internal/util/rekuest"
)

type options struct {
	bundlePath string
	event      types.EventKind
	isScav     bool
	outputPath string
}

func run(c *cli.Context, deps CommandDeps, opts options) error {
	if err := rekuest.ValidVar(string(opts.event), "oneof=sessionStart raidStart raidEnd inventoryChanged"); err != nil {
		return errors.Wrapf(err, "unknown event %q", opts.event)
	}

	b, err := os.ReadFile(opts.bundlePath)
	if err != nil {
		return errors.Wrap(err, "failed to read bundle")
	}

	var request types.SessionStartRequest
	if err := json.Unmarshal(b, &request); err != nil {
		return errors.Wrap(err, "failed to decode bundle")
	}
	if err := rekuest.ValidStruct(&request); err != nil {
		return errors.Wrap(err, "invalid bundle")
	}

	session, err := deps.SessionService.Capture(&request)
	if err != nil {
		return err
	}
	defer deps.SessionService.Delete(session.ProfileID)

	result, err := deps.RecalculationService.Recalculate(c.Context, session, request.Profile, opts.event, opts.isScav)
	if err != nil {
		return errors.Wrap(err, "failed to recalculate")
	}

	log.Info().
		Str("evt.name", "cli.recalc").
		Str("profileId", result.ProfileID).
		Str("passId", result.PassID).
		Int("incomplete", len(result.IncompleteRequirements)).
		Int("boosted", len(result.Multipliers)).
		Msg("recalculation finished")

	out, err := json.MarshalIndent(&types.RecalculationResponse{
		PassID:                 result.PassID,
		ProfileID:              result.ProfileID,
		Fingerprint:            session.Fingerprint,
		Locations:              result.Locations,
		Bots:                   result.Bots,
		IncompleteRequirements: result.IncompleteRequirements,
		Multipliers:            result.Multipliers,
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode result")
	}

	var w io.Writer = os.Stdout
	if opts.outputPath != "" {
		f, err := os.Create(opts.outputPath)
		if err != nil {
			return errors.Wrap(err, "failed to create output file")
		}
		defer f.Close()
		w = f
	}
	_, err = w.Write(out)
	return err
}
