package elasticx

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
)

// Config holds the store connection settings for a Context.
type Config struct {
	Addresses []string `koanf:"addresses" json:"addresses"`
	Username  string   `koanf:"username" json:"username"`
	Password  string   `koanf:"password" json:"password"`

	// IndexPrefix is prepended to every resolved index name. Useful to scope
	// one store to multiple environments.
	IndexPrefix string `koanf:"index_prefix" json:"index_prefix"`

	// AllowDeleteIndex gates the index-delete operation. Deleting an index
	// without this opt-in fails before any network call.
	AllowDeleteIndex bool `koanf:"allow_delete_index" json:"allow_delete_index"`
}

const envPrefix = "VESPRY_"

func DefaultConfig() Config {
	return Config{
		Addresses: []string{"http://localhost:9200"},
	}
}

// LoadConfig reads the configuration from an optional yaml file, overlaid
// with VESPRY_* environment variables (VESPRY_ALLOW_DELETE_INDEX,
// VESPRY_ADDRESSES as a comma-separated list, ...).
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, "failed to load config file %q", path)
		}
	}

	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key string, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if key == "addresses" {
			return key, strings.Split(value, ",")
		}
		return key, value
	}), nil)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to load config from environment")
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}

	return cfg, nil
}
