package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Generator GeneratorConfig `yaml:"generator"`
	Demo      DemoConfig      `yaml:"demo"`
	Log       LogConfig       `yaml:"log"`
}

type StoreConfig struct {
	GroupSize   int `yaml:"group_size" validate:"gt=0"`   // records generated per new name group
	BTreeDegree int `yaml:"btree_degree" validate:"gt=1"` // age index branching factor
}

type GeneratorConfig struct {
	Seed   int64 `yaml:"seed"` // 0 = seed from clock
	MinAge int   `yaml:"min_age" validate:"gte=0"`
	MaxAge int   `yaml:"max_age" validate:"gtfield=MinAge"` // exclusive
}

type DemoConfig struct {
	RecordCount int    `yaml:"record_count" validate:"gte=0"`
	FirstName   string `yaml:"first_name" validate:"required"`
	LastName    string `yaml:"last_name" validate:"required"`
	Age         int    `yaml:"age" validate:"gte=0"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

func Default() *Config {
	return &Config{
		Store: StoreConfig{
			GroupSize:   3,
			BTreeDegree: 32,
		},
		Generator: GeneratorConfig{
			MinAge: 18,
			MaxAge: 60,
		},
		Demo: DemoConfig{
			RecordCount: 10000,
			FirstName:   "Jack",
			LastName:    "Jones",
			Age:         30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configPath, or the first of the default locations when
// configPath is empty. Missing default files are not an error.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range []string{"configs/classroom.yaml", "classroom.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				return cfg, decode(data, cfg)
			}
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}
	return cfg, decode(data, cfg)
}

func decode(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(cfg)
	return Validate(cfg)
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Store.GroupSize == 0 {
		cfg.Store.GroupSize = def.Store.GroupSize
	}
	if cfg.Store.BTreeDegree == 0 {
		cfg.Store.BTreeDegree = def.Store.BTreeDegree
	}
	if cfg.Generator.MinAge == 0 && cfg.Generator.MaxAge == 0 {
		cfg.Generator.MinAge = def.Generator.MinAge
		cfg.Generator.MaxAge = def.Generator.MaxAge
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}

var validate = validator.New()

func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
