package model

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tidwall/sjson"
)

// overlayField is a typed value written over a path of a raw host document on output.
type overlayField struct {
	path  string
	value any
	skip  bool
}

// overlay writes fields over a copy of raw. Paths are sjson paths; raw itself is never modified.
func overlay(raw []byte, fields ...overlayField) ([]byte, error) {
	out := make([]byte, 0, len(raw))
	if len(raw) == 0 {
		out = append(out, '{', '}')
	} else {
		out = append(out, raw...)
	}

	for _, f := range fields {
		if f.skip {
			continue
		}
		b, err := json.Marshal(f.value)
		if err != nil {
			return nil, errors.Wrapf(err, "model: failed to marshal %s", f.path)
		}
		out, err = sjson.SetRawBytes(out, f.path, b)
		if err != nil {
			return nil, errors.Wrapf(err, "model: failed to overlay %s", f.path)
		}
	}
	return out, nil
}

func cloneRaw(data []byte) []byte {
	return append([]byte(nil), data...)
}
