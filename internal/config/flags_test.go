package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *StructuredConfig
		wantErr bool
	}{
		{
			name: "no flags",
			args: nil,
			want: &StructuredConfig{},
		},
		{
			name: "all flags",
			args: []string{
				"-a", "lab.example.com:8443",
				"-configs-path", "/cgi-bin/list",
				"-request-timeout", "10s",
				"-refresh-interval", "1m",
				"-log-level", "warn",
				"-c", "/etc/lab/client.json",
			},
			want: &StructuredConfig{
				App: App{LogLevel: "warn"},
				Adapter: Adapter{
					HTTPAddress:    "lab.example.com:8443",
					ConfigsPath:    "/cgi-bin/list",
					RequestTimeout: 10 * time.Second,
				},
				Workers:      Workers{RefreshInterval: time.Minute},
				JSONFilePath: "/etc/lab/client.json",
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "alias.json"},
			want: &StructuredConfig{JSONFilePath: "alias.json"},
		},
		{
			name:    "bad duration",
			args:    []string{"-request-timeout", "fast"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	_, err := parseFlags([]string{"-h"})
	require.Error(t, err)
	assert.ErrorIs(t, err, flag.ErrHelp)
}
