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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cybrota/avltree/avl"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

type LoadOptions struct {
	BloomSize   uint
	BloomHashes uint
	Progress    io.Writer // nil disables the progress bar
}

type LoadStats struct {
	Read       int
	Inserted   int
	Duplicates int
	Height     int
}

func loadOptionsFromConfig(cfg LoaderConfig, progress io.Writer) LoadOptions {
	opts := LoadOptions{
		BloomSize:   cfg.BloomSize,
		BloomHashes: cfg.BloomHashes,
	}
	if cfg.ShowProgress {
		opts.Progress = progress
	}
	return opts
}

func keyBytes(buf []byte, key int) []byte {
	binary.BigEndian.PutUint64(buf, uint64(key))
	return buf
}

// LoadKeys inserts keys into tree and counts how many were new. A bloom
// filter screens out most lookups: a miss means the key is certainly new,
// a hit is confirmed against the tree.
func LoadKeys(tree *avl.Tree, keys []int, opts LoadOptions, log zerolog.Logger) LoadStats {
	if opts.BloomSize == 0 {
		opts.BloomSize = defaultConfig.Load.BloomSize
	}
	if opts.BloomHashes == 0 {
		opts.BloomHashes = defaultConfig.Load.BloomHashes
	}
	seen := bloom.New(opts.BloomSize, opts.BloomHashes)

	buf := make([]byte, 8)
	for _, k := range tree.InOrder() {
		seen.Add(keyBytes(buf, k))
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(keys),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("🌳 Inserting keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(opts.Progress)
			}),
		)
	}

	stats := LoadStats{Read: len(keys)}
	for _, k := range keys {
		b := keyBytes(buf, k)
		if seen.Test(b) && tree.Search(k) {
			stats.Duplicates++
		} else {
			seen.Add(b)
			tree.Insert(k)
			stats.Inserted++
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	stats.Height = tree.Height()
	log.Info().
		Int("read", stats.Read).
		Int("inserted", stats.Inserted).
		Int("duplicates", stats.Duplicates).
		Int("height", stats.Height).
		Msg("keys loaded")

	return stats
}
