package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Index   IndexConfig   `yaml:"index"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

type IndexConfig struct {
	Ordered        string `yaml:"ordered"`         // "bst" or "btree"
	BTreeDegree    int    `yaml:"btree_degree"`    // only used by "btree"
	FallbackSearch bool   `yaml:"fallback_search"` // consult the tree when the map misses
	VerifyWrites   bool   `yaml:"verify_writes"`   // run Check after every mutation
}

type StorageConfig struct {
	Path  string `yaml:"path"`  // SQLite snapshot file
	Codec string `yaml:"codec"` // "json" or "bson"
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text, json, dev, off
}

func Default() *Config {
	return &Config{
		Index: IndexConfig{
			Ordered:        "bst",
			BTreeDegree:    32,
			FallbackSearch: true,
		},
		Storage: StorageConfig{
			Path:  "retail_data/snapshot.db",
			Codec: "json",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range []string{"configs/retaildb.yaml", "retaildb.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Index.Ordered == "" {
		cfg.Index.Ordered = "bst"
	}
	if cfg.Index.BTreeDegree < 2 {
		cfg.Index.BTreeDegree = 32
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "retail_data/snapshot.db"
	}
	if cfg.Storage.Codec == "" {
		cfg.Storage.Codec = "json"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
