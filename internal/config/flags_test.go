package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 3000}, expected: "localhost:3000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr string
	}{
		{name: "localhost", input: "localhost:3000", want: NetAddress{Host: "localhost", Port: 3000}},
		{name: "ipv4", input: "127.0.0.1:3001", want: NetAddress{Host: "127.0.0.1", Port: 3001}},
		{name: "port only", input: ":3002", want: NetAddress{Port: 3002}},
		{name: "missing port", input: "localhost", wantErr: "host:port"},
		{name: "port out of range", input: "localhost:70000", wantErr: "between 1 and 65535"},
		{name: "not a number", input: "localhost:http", wantErr: "invalid syntax"},
		{name: "bad ip", input: "example.com:80", wantErr: "incorrect IP-address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-url", "http://localhost:3000/notes/api",
		"-timeout", "10s",
		"-email", "user@example.com",
		"-new-email", "new@example.com",
		"-password", "secret1",
		"-new-password", "secret2",
		"-target", "remote",
		"-interval", "30s",
		"-a", "127.0.0.1:4000",
		"-d", "file:stub.db",
		"-log-level", "warn",
		"-c", "/tmp/notes.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/notes/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "user@example.com", cfg.Credentials.Email)
	assert.Equal(t, "new@example.com", cfg.Credentials.NewEmail)
	assert.Equal(t, "secret1", cfg.Credentials.Password)
	assert.Equal(t, "secret2", cfg.Credentials.NewPassword)
	assert.Equal(t, TargetRemote, cfg.Suite.Target)
	assert.Equal(t, 30*time.Second, cfg.Suite.SmokeInterval)
	assert.Equal(t, "127.0.0.1:4000", cfg.Stub.Address)
	assert.Equal(t, "file:stub.db", cfg.Stub.DSN)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/notes.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "/tmp/alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/alias.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-nope"}},
		{name: "bad duration", args: []string{"-timeout", "soon"}},
		{name: "bad address", args: []string{"-a", "nowhere"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
