package appconfig

import (
	"bytes"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/glentakahashi/spt-pityloot/internal/model"
	"github.com/glentakahashi/spt-pityloot/internal/util"
)

var validate = util.NewValidator()

// LoadTuning reads the engine tuning from the YAML file at path. Keys absent from the
// file keep their defaults. A missing file yields the defaults.
func LoadTuning(path string) (model.Settings, error) {
	settings, err := loadTuning(path)
	if err == nil && settings.QuestKeysMissing() {
		log.Warn().
			Str("evt.name", "config.tuning.questkeys").
			Str("path", path).
			Msg("includeKeys is on but questKeys is empty, no quest key requirements will be tracked")
	}
	return settings, err
}

func loadTuning(path string) (model.Settings, error) {
	settings := model.DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().
				Str("evt.name", "config.tuning.missing").
				Str("path", path).
				Msg("tuning file not found, using defaults")
			return settings, nil
		}
		return settings, errors.Wrapf(err, "appconfig: failed to read tuning file %s", path)
	}

	return DecodeTuning(data, settings)
}

// DecodeTuning decodes YAML over base and validates the result.
func DecodeTuning(data []byte, base model.Settings) (model.Settings, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&base); err != nil && !errors.Is(err, io.EOF) {
		return base, errors.Wrap(err, "appconfig: failed to decode tuning")
	}
	if base.QuestKeys == nil {
		base.QuestKeys = map[string][]string{}
	}

	if err := validate.Struct(&base); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return base, errors.Errorf("appconfig: invalid tuning: %s failed on %q", ve[0].Namespace(), ve[0].Tag())
		}
		return base, errors.Wrap(err, "appconfig: invalid tuning")
	}
	return base, nil
}
