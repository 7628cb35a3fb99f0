package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
)

func TestLevel(t *testing.T) {
	type testCase struct {
		name   string
		conf   func(c *appconfig.Config)
		expect zerolog.Level
	}

	testCases := []testCase{
		{name: "default", conf: func(c *appconfig.Config) {}, expect: zerolog.InfoLevel},
		{name: "debug", conf: func(c *appconfig.Config) { c.Tuning.Debug = true }, expect: zerolog.DebugLevel},
		{name: "trace", conf: func(c *appconfig.Config) { c.Tuning.Debug, c.Tuning.Trace = true, true }, expect: zerolog.TraceLevel},
		{name: "dev mode", conf: func(c *appconfig.Config) { c.DevMode = true }, expect: zerolog.TraceLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := &appconfig.Config{}
			tc.conf(conf)
			assert.Equal(t, tc.expect, Level(conf))
		})
	}
}
