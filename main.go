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
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cybrota/rankavl/loaders"
	"github.com/cybrota/rankavl/ranktree"
	"github.com/spf13/cobra"
)

// Overridden at release time with -ldflags "-X main.version=..."
var version = "dev"

// loadDataset parses a dataset file and builds its tree with the configured options
func loadDataset(path string, config *Config) (*Dataset, error) {
	records, err := loaders.NewLoaderManager().LoadFile(path)
	if err != nil {
		return nil, err
	}
	return buildDataset(records, BuildOptions{
		Combine:      config.CombineFunc(),
		SortInput:    config.Load.SortInput,
		ShowProgress: config.Load.ShowProgress,
		Progress:     os.Stderr,
	})
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%d lines%s to clipboard.\n", Green, strings.Count(text, "\n"), Reset)
	return nil
}

func emit(cmd *cobra.Command, text string) {
	if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
		if err := copyToClipboard(text); err != nil {
			log.Fatalf("Error copying to clipboard: %v", err)
		}
		return
	}
	fmt.Print(text)
}

func mustConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		c := defaultConfig
		return &c
	}
	return config
}

func mustLoad(path string, config *Config) *Dataset {
	tree, err := loadDataset(path, config)
	if err != nil {
		log.Fatalf("Error loading %s: %v", path, err)
	}
	return tree
}

func main() {
	asciiLogo := `
██████╗  █████╗ ███╗   ██╗██╗  ██╗ █████╗ ██╗   ██╗██╗
██╔══██╗██╔══██╗████╗  ██║██║ ██╔╝██╔══██╗██║   ██║██║
██████╔╝███████║██╔██╗ ██║█████╔╝ ███████║██║   ██║██║
██╔══██╗██╔══██║██║╚██╗██║██╔═██╗ ██╔══██║╚██╗ ██╔╝██║
██║  ██║██║  ██║██║ ╚████║██║  ██╗██║  ██║ ╚████╔╝ ███████╗
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝  ╚═╝  ╚═══╝  ╚══════╝
Order-statistic AVL trees for key/value datasets [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdBuild = &cobra.Command{
		Use:   "build FILE",
		Short: "Build a tree from a dataset and report its shape",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Build loads a YAML or text dataset into a rank-augmented AVL tree`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			tree := mustLoad(args[0], mustConfig())
			fmt.Printf("%s %d keys, height %d\n", styles.Key.Render(args[0]+":"), tree.Len(), tree.Height())
		},
	}

	var cmdMerge = &cobra.Command{
		Use:   "merge A B",
		Short: "Merge two datasets, combining values of shared keys",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Merge prints the union of two datasets in key order"),
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			config := mustConfig()
			if name := cmd.Flag("combine").Value.String(); name != "" {
				config.Merge.Combine = name
			}
			merged := ranktree.Merge(mustLoad(args[0], config), mustLoad(args[1], config), config.CombineFunc())

			var sb strings.Builder
			for key, v := range merged.All() {
				sb.WriteString(formatEntry(key, v) + "\n")
			}
			emit(cmd, sb.String())
		},
	}
	cmdMerge.Flags().String("combine", "", "combine function for shared keys (sum|max|min|first|last)")
	cmdMerge.Flags().Bool("copy", false, "copy the output to clipboard")

	var cmdSelect = &cobra.Command{
		Use:   "select FILE K",
		Short: "Print the k-th smallest key (1-based)",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			k, err := strconv.Atoi(args[1])
			if err != nil {
				log.Fatalf("Position %q is not an integer", args[1])
			}
			key, v, err := mustLoad(args[0], mustConfig()).Select(k)
			if err != nil {
				log.Fatalf("Error selecting %d: %v", k, err)
			}
			fmt.Println(formatEntry(key, v))
		},
	}

	var cmdRank = &cobra.Command{
		Use:   "rank FILE KEY",
		Short: "Print how many keys are less than or equal to KEY",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(mustLoad(args[0], mustConfig()).Rank(args[1]))
		},
	}

	var cmdRange = &cobra.Command{
		Use:   "range FILE LOW HIGH",
		Short: "Print the entries with LOW <= key < HIGH",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			var sb strings.Builder
			for _, e := range mustLoad(args[0], mustConfig()).Range(args[1], args[2]) {
				sb.WriteString(formatEntry(e.Key, e.Value) + "\n")
			}
			emit(cmd, sb.String())
		},
	}
	cmdRange.Flags().Bool("copy", false, "copy the output to clipboard")

	var cmdPrint = &cobra.Command{
		Use:   "print FILE",
		Short: "Draw the tree with per-node height and rank",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			emit(cmd, mustLoad(args[0], mustConfig()).Print())
		},
	}
	cmdPrint.Flags().Bool("copy", false, "copy the output to clipboard")

	var cmdKeys = &cobra.Command{
		Use:   "keys FILE",
		Short: "Print the keys in ascending order",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			keys := mustLoad(args[0], mustConfig()).Keys()
			if len(keys) == 0 {
				return
			}
			emit(cmd, strings.Join(keys, "\n")+"\n")
		},
	}
	cmdKeys.Flags().Bool("copy", false, "copy the output to clipboard")

	var cmdCheck = &cobra.Command{
		Use:   "check FILE",
		Short: "Verify ordering, balance, height and rank of every node",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := mustLoad(args[0], mustConfig()).Validate(); err != nil {
				log.Fatalf("%s: %v", args[0], err)
			}
			fmt.Println(styles.Success.Render(args[0] + ": ok"))
		},
	}

	var cmdHistogram = &cobra.Command{
		Use:   "histogram FILE",
		Short: "Count keys per integer value bucket",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := mustConfig()
			for _, b := range valueHistogram(mustLoad(args[0], config), config.TableConfig()) {
				fmt.Printf("%s %s %d\n",
					styles.Key.Render(fmt.Sprintf("[%d, %d)", b.Floor, b.Floor+1)),
					styles.Muted.Render(strings.Repeat("▇", min(b.Count, 40))),
					b.Count)
			}
		},
	}

	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Open an interactive session over named trees",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Repl keeps several trees in memory; type help for commands"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := NewSession(mustConfig(), os.Stdout).Run(os.Stdin); err != nil {
				log.Fatalf("Error reading input: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := displaySettings(os.Stdout); err != nil {
				log.Fatalf("Error displaying settings: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print rankavl usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the rankavl CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print rankavl version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "rankavl",
		Version: version,
		Long:    asciiLogo,
	}
	rootCmd.AddCommand(cmdBuild, cmdMerge, cmdSelect, cmdRank, cmdRange, cmdPrint, cmdKeys,
		cmdCheck, cmdHistogram, cmdRepl, cmdSettings, cmdUsage, cmdVersion)
	rootCmd.Execute()
}
