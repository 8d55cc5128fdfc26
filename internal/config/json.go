package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations.
type StructuredJSONConfig struct {
	API struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Credentials struct {
		Email       string `json:"email"`
		NewEmail    string `json:"new_email"`
		Password    string `json:"password"`
		NewPassword string `json:"new_password"`
	} `json:"credentials,omitempty"`

	Suite struct {
		Target        string   `json:"target"`
		SmokeInterval Duration `json:"smoke_interval"`
	} `json:"suite,omitempty"`

	Stub struct {
		Address string `json:"address"`
		DSN     string `json:"dsn"`
	} `json:"stub,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			BaseURL:        jsonCfg.API.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Credentials: Credentials{
			Email:       jsonCfg.Credentials.Email,
			NewEmail:    jsonCfg.Credentials.NewEmail,
			Password:    jsonCfg.Credentials.Password,
			NewPassword: jsonCfg.Credentials.NewPassword,
		},
		Suite: Suite{
			Target:        jsonCfg.Suite.Target,
			SmokeInterval: time.Duration(jsonCfg.Suite.SmokeInterval),
		},
		Stub: Stub{
			Address: jsonCfg.Stub.Address,
			DSN:     jsonCfg.Stub.DSN,
		},
		Log: Log{Level: jsonCfg.Log.Level},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
