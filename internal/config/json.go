package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig is the on-disk layout of the JSON config file. Durations
// accept either Go duration strings ("30s") or nanosecond numbers.
type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		TerminalID    string   `json:"terminal_id"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
		LogFile       string   `json:"log_file"`
	} `json:"app"`

	Storage struct {
		DSN       string `json:"dsn"`
		LocalPath string `json:"local_path"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	API struct {
		Address string `json:"address"`
	} `json:"api"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Workers struct {
		SyncInterval         Duration `json:"sync_interval"`
		ConnectivityInterval Duration `json:"connectivity_interval"`
		InitialSyncDelay     Duration `json:"initial_sync_delay"`
	} `json:"workers"`

	Broker struct {
		URL      string `json:"url"`
		Exchange string `json:"exchange"`
		Queue    string `json:"queue"`
	} `json:"broker"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			TerminalID:    j.App.TerminalID,
			HashKey:       j.App.HashKey,
			Version:       j.App.Version,
			LogFile:       j.App.LogFile,
		},
		Storage: Storage{
			DB:    DB{DSN: j.Storage.DSN},
			Local: Local{Path: j.Storage.LocalPath},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		API: API{Address: j.API.Address},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval:         time.Duration(j.Workers.SyncInterval),
			ConnectivityInterval: time.Duration(j.Workers.ConnectivityInterval),
			InitialSyncDelay:     time.Duration(j.Workers.InitialSyncDelay),
		},
		Broker: Broker{
			URL:      j.Broker.URL,
			Exchange: j.Broker.Exchange,
			Queue:    j.Broker.Queue,
		},
	}, nil
}

// Duration is a time.Duration that unmarshals from "1h"-style strings or
// from nanosecond numbers.
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
