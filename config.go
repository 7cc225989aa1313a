// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/cybrota/rankavl/hashtable"
	"github.com/cybrota/rankavl/ranktree"
	"gopkg.in/yaml.v3"
)

const configEnvVar = "RANKAVL_CONFIG"

type LoadingConfig struct {
	ShowProgress bool `yaml:"show_progress"`
	SortInput    bool `yaml:"sort_input"`
}

type MergeConfig struct {
	Combine string `yaml:"combine"`
}

type CacheConfig struct {
	TTLMinutes int `yaml:"ttl_minutes"`
}

type HashtableConfig struct {
	BloomBits   uint `yaml:"bloom_bits"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type Config struct {
	Load      LoadingConfig   `yaml:"load"`
	Merge     MergeConfig     `yaml:"merge"`
	Cache     CacheConfig     `yaml:"cache"`
	Hashtable HashtableConfig `yaml:"hashtable"`
}

var defaultConfig = Config{
	Load: LoadingConfig{
		ShowProgress: true,
		SortInput:    false,
	},
	Merge: MergeConfig{
		Combine: "sum",
	},
	Cache: CacheConfig{
		TTLMinutes: 30,
	},
	Hashtable: HashtableConfig{
		BloomBits:   hashtable.DefaultBloomBits,
		BloomHashes: hashtable.DefaultBloomHashes,
	},
}

var combineFuncs = map[string]ranktree.CombineFunc[float64]{
	"sum":   ranktree.Sum[float64],
	"max":   ranktree.Max[float64],
	"min":   ranktree.Min[float64],
	"first": ranktree.First[float64],
	"last":  ranktree.Last[float64],
}

// CombineFunc resolves merge.combine, falling back to sum for unknown names.
func (c *Config) CombineFunc() ranktree.CombineFunc[float64] {
	if fn, ok := combineFuncs[c.Merge.Combine]; ok {
		return fn
	}
	log.Printf("Unknown merge.combine %q. Using sum.", c.Merge.Combine)
	return ranktree.Sum[float64]
}

// CacheTTL is the lifetime of a parsed dataset in the session cache.
func (c *Config) CacheTTL() time.Duration {
	if c.Cache.TTLMinutes <= 0 {
		return time.Duration(defaultConfig.Cache.TTLMinutes) * time.Minute
	}
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

func (c *Config) TableConfig() hashtable.Config {
	return hashtable.Config{
		BloomBits:   c.Hashtable.BloomBits,
		BloomHashes: c.Hashtable.BloomHashes,
	}
}

func getConfigPath() (string, error) {
	if path := os.Getenv(configEnvVar); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".rankavl.yaml"), nil
}

// LoadConfig reads the user config. Any problem yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &config, nil
	}
	if err != nil {
		log.Printf("Failed to read %s: %v. Using default settings.", configPath, err)
		return &config, nil
	}

	// Fields missing from the file keep their defaults.
	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Printf("Failed to parse %s: %v. Using default settings.", configPath, err)
		config = defaultConfig
		return &config, nil
	}

	return &config, nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %v", err)
	}

	fmt.Fprintln(w, styles.Title.Render("rankavl configuration"))
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	}

	rows := []struct {
		name  string
		value any
		desc  string
	}{
		{"load.show_progress", config.Load.ShowProgress, "Progress bar while inserting unsorted datasets"},
		{"load.sort_input", config.Load.SortInput, "Sort unsorted datasets and bulk-build instead of inserting one by one"},
		{"merge.combine", config.Merge.Combine, "How values sharing a key are combined (sum|max|min|first|last)"},
		{"cache.ttl_minutes", config.Cache.TTLMinutes, "Lifetime of parsed datasets in a repl session"},
		{"hashtable.bloom_bits", config.Hashtable.BloomBits, "Bits in the histogram table's bloom filter"},
		{"hashtable.bloom_hashes", config.Hashtable.BloomHashes, "Hash functions in the histogram table's bloom filter"},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %s: %v\n", styles.Key.Render(row.name), row.value)
		fmt.Fprintf(w, "    %s\n", styles.Muted.Render(row.desc))
	}
	return nil
}
