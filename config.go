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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type TreeConfig struct {
	ShowHeights bool `yaml:"show_heights"`
}

type LoaderConfig struct {
	ShowProgress bool `yaml:"show_progress"`
	BloomSize    uint `yaml:"bloom_size"`
	BloomHashes  uint `yaml:"bloom_hashes"`
}

type UIConfig struct {
	WordWrap int `yaml:"word_wrap"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

type Config struct {
	Tree TreeConfig   `yaml:"tree"`
	Load LoaderConfig `yaml:"load"`
	UI   UIConfig     `yaml:"ui"`
	Log  LogConfig    `yaml:"log"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		ShowHeights: true,
	},
	Load: LoaderConfig{
		ShowProgress: true,
		BloomSize:    1 << 16,
		BloomHashes:  4,
	},
	UI: UIConfig{
		WordWrap: 72,
	},
	Log: LogConfig{
		Level:   "info",
		Console: true,
	},
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

// LoadConfig reads ~/.avltree.yaml. A missing or unreadable file yields the
// defaults; it is not an error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	// Unmarshal over the defaults so absent keys keep their default value.
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	config.sanitize()

	return config, nil
}

func (c *Config) sanitize() {
	if c.Load.BloomSize == 0 {
		c.Load.BloomSize = defaultConfig.Load.BloomSize
	}
	if c.Load.BloomHashes == 0 {
		c.Load.BloomHashes = defaultConfig.Load.BloomHashes
	}
	if c.UI.WordWrap <= 0 {
		c.UI.WordWrap = defaultConfig.UI.WordWrap
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := writeConfigFile(configPath, config); err != nil {
			return err
		}
		created = true
	}

	fmt.Printf("🔧 avltree configuration\n")
	fmt.Printf("═══════════════════════\n\n")

	if created {
		fmt.Printf("📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s\n\n", configPath)
	}

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • show_heights: %t\n\n", config.Tree.ShowHeights)
	fmt.Printf("📥 %sLoad:%s\n", Green, Reset)
	fmt.Printf("  • show_progress: %t\n", config.Load.ShowProgress)
	fmt.Printf("  • bloom_size: %d\n", config.Load.BloomSize)
	fmt.Printf("  • bloom_hashes: %d\n\n", config.Load.BloomHashes)
	fmt.Printf("🖥  %sUI:%s\n", Green, Reset)
	fmt.Printf("  • word_wrap: %d\n\n", config.UI.WordWrap)
	fmt.Printf("📜 %sLog:%s\n", Green, Reset)
	fmt.Printf("  • level: %s\n", config.Log.Level)
	fmt.Printf("  • console: %t\n", config.Log.Console)

	return nil
}
