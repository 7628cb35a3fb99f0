package service

import (
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/glentakahashi/spt-pityloot/internal/constant"
	"github.com/glentakahashi/spt-pityloot/internal/model/types"
)

// Notifier publishes recalculation summaries. It is a no-op without a NATS connection.
type Notifier struct {
	NATS *nats.Conn
}

func NewNotifier(nc *nats.Conn) *Notifier {
	return &Notifier{NATS: nc}
}

func (s *Notifier) Recalculated(summary *types.RecalculationSummary) error {
	if s.NATS == nil {
		return nil
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return errors.Wrap(err, "failed to encode recalculation summary")
	}

	subject := constant.RecalculatedSubjectPrefix + summary.ProfileID
	if err := s.NATS.Publish(subject, data); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", subject)
	}

	log.Trace().
		Str("evt.name", "notifier.publish").
		Str("subject", subject).
		Str("pass", summary.PassID).
		Msg("published recalculation summary")
	return nil
}
