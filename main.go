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
	"os"

	"github.com/cybrota/avltree/avl"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sFailed to load configuration: %v. Using default settings.%s\n", Warning, err, Reset)
	}
	return config
}

// preload fills tree from a keys file when path is set.
func preload(tree *avl.Tree, path string, config *Config, log zerolog.Logger, progress io.Writer) (LoadStats, error) {
	if path == "" {
		return LoadStats{}, nil
	}
	keys, err := ReadKeysFile(path)
	if err != nil {
		return LoadStats{}, err
	}
	return LoadKeys(tree, keys, loadOptionsFromConfig(config.Load, progress), log), nil
}

func runUI(keysPath string, logPath string) error {
	config := loadConfigOrDefault()

	// The UI owns the terminal, so logs only go to a file when asked for.
	log := zerolog.Nop()
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log = newLogger(LogConfig{Level: config.Log.Level}, f)
	}

	tree := avl.New()
	if _, err := preload(tree, keysPath, config, log, nil); err != nil {
		return err
	}

	session := NewSession(tree, config, log)
	return runBubbleTeaApp(session, NewRenderCache(), config)
}

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Self-balancing binary search tree of integer keys [Version: %s%s%s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var keysPath, logPath string

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive tree UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the UI where operations are typed at a prompt and the tree is redrawn after each one`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(keysPath, logPath)
		},
	}
	cmdRun.Flags().StringVar(&keysPath, "keys", "", "keys file to load before starting")
	cmdRun.Flags().StringVar(&logPath, "log-file", "", "write debug logs to this file")

	var printTree, checkTree bool
	var cmdLoad = &cobra.Command{
		Use:   "load FILE",
		Short: "Insert every key of a keys file and report the result",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Load reads integers from FILE ("-" for stdin), inserts them and prints the keys in order`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefault()
			log := newLogger(config.Log, os.Stderr)

			tree := avl.New()
			stats, err := preload(tree, args[0], config, log, os.Stderr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tree.InOrder())
			fmt.Fprintf(out, "read=%d inserted=%d duplicates=%d height=%d\n",
				stats.Read, stats.Inserted, stats.Duplicates, stats.Height)

			if printTree {
				if err := tree.Fprint(out, config.Tree.ShowHeights); err != nil {
					return err
				}
			}
			if checkTree {
				if err := tree.Validate(); err != nil {
					return err
				}
				fmt.Fprintf(out, "%sinvariants hold%s\n", Green, Reset)
			}
			return nil
		},
	}
	cmdLoad.Flags().BoolVar(&printTree, "print", false, "draw the tree after loading")
	cmdLoad.Flags().BoolVar(&checkTree, "check", false, "verify the tree invariants after loading")

	var execKeys string
	var cmdExec = &cobra.Command{
		Use:   "exec SCRIPT",
		Short: "Run an operation script",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Exec runs one operation per line of SCRIPT ("-" for stdin), e.g. "insert 3 1 2" or "print"`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefault()
			log := newLogger(config.Log, os.Stderr)

			tree := avl.New()
			if _, err := preload(tree, execKeys, config, log, nil); err != nil {
				return err
			}

			var in io.Reader = os.Stdin
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			session := NewSession(tree, config, log)
			return session.RunScript(in, cmd.OutOrStdout())
		},
	}
	cmdExec.Flags().StringVar(&execKeys, "keys", "", "keys file to load before running the script")

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in insert/delete/rotation scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avltree",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to run command when no subcommand is provided
			return runUI("", "")
		},
	}
	rootCmd.AddCommand(cmdRun, cmdLoad, cmdExec, cmdDemo, cmdUsage, cmdSettings, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", Error, Reset, err)
		os.Exit(1)
	}
}
