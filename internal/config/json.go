package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// string durations.
type StructuredJSONConfig struct {
	Storage struct {
		Type          string   `json:"type"`
		GroupID       string   `json:"group_id"`
		SharedDir     string   `json:"shared_dir"`
		FileName      string   `json:"file_name"`
		WatchExternal bool     `json:"watch_external"`
		BusyTimeout   Duration `json:"busy_timeout"`
	} `json:"storage,omitempty"`

	Keys struct {
		Backend      string `json:"backend"`
		ServiceName  string `json:"service_name"`
		FileDir      string `json:"file_dir"`
		FilePassword string `json:"file_password"`
		KeyName      string `json:"key_name"`
	} `json:"keys,omitempty"`

	Crypto struct {
		Algorithm string `json:"algorithm"`
	} `json:"crypto,omitempty"`

	Sync struct {
		Interval       Duration `json:"interval"`
		SourceURL      string   `json:"source_url"`
		SourceFile     string   `json:"source_file"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"sync,omitempty"`

	App struct {
		UserID  string `json:"user_id"`
		Follow  bool   `json:"follow"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`
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
		Storage: Storage{
			Type:          jsonCfg.Storage.Type,
			GroupID:       jsonCfg.Storage.GroupID,
			SharedDir:     jsonCfg.Storage.SharedDir,
			FileName:      jsonCfg.Storage.FileName,
			WatchExternal: jsonCfg.Storage.WatchExternal,
			BusyTimeout:   time.Duration(jsonCfg.Storage.BusyTimeout),
		},
		Keys: Keys{
			Backend:      jsonCfg.Keys.Backend,
			ServiceName:  jsonCfg.Keys.ServiceName,
			FileDir:      jsonCfg.Keys.FileDir,
			FilePassword: jsonCfg.Keys.FilePassword,
			KeyName:      jsonCfg.Keys.KeyName,
		},
		Crypto: Crypto{
			Algorithm: jsonCfg.Crypto.Algorithm,
		},
		Sync: Sync{
			Interval:       time.Duration(jsonCfg.Sync.Interval),
			SourceURL:      jsonCfg.Sync.SourceURL,
			SourceFile:     jsonCfg.Sync.SourceFile,
			Token:          jsonCfg.Sync.Token,
			RequestTimeout: time.Duration(jsonCfg.Sync.RequestTimeout),
		},
		App: App{
			UserID:  jsonCfg.App.UserID,
			Follow:  jsonCfg.App.Follow,
			LogFile: jsonCfg.App.LogFile,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
