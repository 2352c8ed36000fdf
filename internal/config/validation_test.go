package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantFields []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:       "missing url",
			mutate:     func(c *Config) { c.Workspace.URL = "" },
			wantFields: []string{"workspace.url"},
		},
		{
			name:       "relative url",
			mutate:     func(c *Config) { c.Workspace.URL = "notes.local" },
			wantFields: []string{"workspace.url"},
		},
		{
			name:       "unsupported scheme",
			mutate:     func(c *Config) { c.Workspace.URL = "ftp://notes.local" },
			wantFields: []string{"workspace.url"},
		},
		{
			name:       "zero timeout",
			mutate:     func(c *Config) { c.Workspace.Timeout = 0 },
			wantFields: []string{"workspace.timeout"},
		},
		{
			name: "http transport needs a port",
			mutate: func(c *Config) {
				c.Server.Transport = TransportStreamableHTTP
				c.Server.Port = 0
			},
			wantFields: []string{"server.port"},
		},
		{
			name:   "stdio ignores port",
			mutate: func(c *Config) { c.Server.Port = 0 },
		},
		{
			name: "several problems are collected",
			mutate: func(c *Config) {
				c.Server.Name = " "
				c.Logging.Level = "loud"
				c.Logging.Format = "xml"
			},
			wantFields: []string{"server.name", "logging.level", "logging.format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			var fields []string
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("a", "is bad")
	assert.Equal(t, "field 'a': is bad", errs.Error())

	errs.Add("b", "is worse", 3)
	assert.Equal(t, "validation failed: field 'a': is bad; field 'b': is worse", errs.Error())
	assert.Equal(t, 3, errs[1].Value)
}

func TestServerConfig_Address(t *testing.T) {
	s := ServerConfig{Host: "localhost", Port: 8091}
	assert.Equal(t, "localhost:8091", s.Address())
}
