package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds CLI configuration parsed from RRQ_* environment
// variables.
type AppConfig struct {
	// Nameserver is the resolver to query, in host:port form.
	Nameserver string `koanf:"nameserver" validate:"required,hostname_port"`

	// Protocol is "udp" (TCP fallback on truncation), "tcp", or
	// "udp-only".
	Protocol string `koanf:"protocol" validate:"required,oneof=udp tcp udp-only"`

	// Timeout is a Go duration string bounding each query.
	Timeout string `koanf:"timeout" validate:"required"`

	// BufferSize is the receive buffer capacity in bytes.
	BufferSize int `koanf:"buffer_size" validate:"required,gte=12,lte=65535"`

	// EDNS enables the EDNS0 OPT record on queries.
	EDNS bool `koanf:"edns"`

	// EDNSPayloadSize is the advertised UDP payload size when EDNS is on.
	EDNSPayloadSize int `koanf:"edns_payload_size" validate:"gte=0,lte=65535"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity.
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
}

// envLoader reads RRQ_-prefixed environment variables. Swappable in
// tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "RRQ_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "RRQ_")), value
		},
	}), nil)
}

// loadConfig parses environment variables into an AppConfig, applying
// defaults and validation.
func loadConfig() (*AppConfig, error) {
	k := koanf.New(".")

	k.Load(structs.Provider(AppConfig{
		Nameserver:      "1.1.1.1:53",
		Protocol:        "udp",
		Timeout:         "5s",
		BufferSize:      4096,
		EDNS:            true,
		EDNSPayloadSize: 1232,
		Env:             "prod",
		LogLevel:        "info",
	}, "koanf"), nil)

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
