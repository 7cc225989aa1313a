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
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/cybrota/rankavl/loaders"
	"github.com/cybrota/rankavl/ranktree"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
)

var errQuit = errors.New("quit")

// Session is an interactive workspace of named trees
type Session struct {
	trees   map[string]*Dataset
	loaders *loaders.LoaderManager
	cache   *cache.Cache
	config  *Config
	out     io.Writer
}

type sessionCommand struct {
	usage string
	args  int // exact number of arguments, -1 for any
	run   func(s *Session, args []string) error
}

var sessionCommands map[string]sessionCommand

func init() {
	sessionCommands = map[string]sessionCommand{
		"load":   {"load NAME FILE", 2, (*Session).cmdLoad},
		"new":    {"new NAME", 1, (*Session).cmdNew},
		"insert": {"insert NAME KEY VALUE", 3, (*Session).cmdInsert},
		"update": {"update NAME KEY VALUE", 3, (*Session).cmdUpdate},
		"remove": {"remove NAME KEY", 2, (*Session).cmdRemove},
		"get":    {"get NAME KEY", 2, (*Session).cmdGet},
		"select": {"select NAME K", 2, (*Session).cmdSelect},
		"rank":   {"rank NAME KEY", 2, (*Session).cmdRank},
		"range":  {"range NAME LOW HIGH", 3, (*Session).cmdRange},
		"min":    {"min NAME", 1, (*Session).cmdMin},
		"max":    {"max NAME", 1, (*Session).cmdMax},
		"merge":  {"merge DEST A B", 3, (*Session).cmdMerge},
		"keys":   {"keys NAME", 1, (*Session).cmdKeys},
		"print":  {"print NAME", 1, (*Session).cmdPrint},
		"check":  {"check NAME", 1, (*Session).cmdCheck},
		"size":   {"size NAME", 1, (*Session).cmdSize},
		"trees":  {"trees", 0, (*Session).cmdTrees},
		"help":   {"help", 0, (*Session).cmdHelp},
		"quit":   {"quit", 0, func(*Session, []string) error { return errQuit }},
		"exit":   {"exit", 0, func(*Session, []string) error { return errQuit }},
	}
}

// NewSession creates an empty session that writes its results to out
func NewSession(config *Config, out io.Writer) *Session {
	return &Session{
		trees:   make(map[string]*Dataset),
		loaders: loaders.NewLoaderManager(),
		cache:   NewDatasetCache(config.CacheTTL()),
		config:  config,
		out:     out,
	}
}

// Run reads commands from in until EOF or quit
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(s.out, styles.Title.Render("rankavl> "))
	for scanner.Scan() {
		err := s.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, styles.Error.Render("error: "+err.Error()))
		}
		fmt.Fprint(s.out, styles.Title.Render("rankavl> "))
	}
	fmt.Fprintln(s.out)
	return scanner.Err()
}

// Exec runs a single command line
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %v", line, err)
	}

	cmd, ok := sessionCommands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", args[0])
	}
	if cmd.args >= 0 && len(args)-1 != cmd.args {
		return fmt.Errorf("usage: %s", cmd.usage)
	}
	return cmd.run(s, args[1:])
}

func (s *Session) tree(name string) (*Dataset, error) {
	tree, ok := s.trees[name]
	if !ok {
		return nil, fmt.Errorf("no tree named %q", name)
	}
	return tree, nil
}

func (s *Session) records(path string) ([]loaders.Record, error) {
	if records, ok := GetDataset(s.cache, path); ok {
		return records, nil
	}
	records, err := s.loaders.LoadFile(path)
	if err != nil {
		return nil, err
	}
	CacheDataset(s.cache, path, records)
	return records, nil
}

func (s *Session) cmdLoad(args []string) error {
	records, err := s.records(args[1])
	if err != nil {
		return err
	}
	tree, err := buildDataset(records, BuildOptions{
		Combine:   s.config.CombineFunc(),
		SortInput: s.config.Load.SortInput,
	})
	if err != nil {
		return err
	}
	s.trees[args[0]] = tree
	fmt.Fprintf(s.out, "%s: %d keys, height %d\n", args[0], tree.Len(), tree.Height())
	return nil
}

func (s *Session) cmdNew(args []string) error {
	s.trees[args[0]] = ranktree.New[string, float64]()
	return nil
}

func parseValue(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q is not a number", raw)
	}
	return v, nil
}

func (s *Session) cmdInsert(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(args[2])
	if err != nil {
		return err
	}
	return tree.Insert(args[1], v)
}

func (s *Session) cmdUpdate(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(args[2])
	if err != nil {
		return err
	}
	return tree.Update(args[1], v)
}

func (s *Session) cmdRemove(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	if !tree.Remove(args[1]) {
		fmt.Fprintf(s.out, "%s: no key %q\n", args[0], args[1])
	}
	return nil
}

func (s *Session) cmdGet(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	v, err := tree.Get(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, formatEntry(args[1], v))
	return nil
}

func (s *Session) cmdSelect(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	k, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("position %q is not an integer", args[1])
	}
	key, v, err := tree.Select(k)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, formatEntry(key, v))
	return nil
}

func (s *Session) cmdRank(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, tree.Rank(args[1]))
	return nil
}

func (s *Session) cmdRange(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	for _, e := range tree.Range(args[1], args[2]) {
		fmt.Fprintln(s.out, formatEntry(e.Key, e.Value))
	}
	return nil
}

func (s *Session) cmdMin(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	key, v, err := tree.Min()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, formatEntry(key, v))
	return nil
}

func (s *Session) cmdMax(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	key, v, err := tree.Max()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, formatEntry(key, v))
	return nil
}

func (s *Session) cmdMerge(args []string) error {
	a, err := s.tree(args[1])
	if err != nil {
		return err
	}
	b, err := s.tree(args[2])
	if err != nil {
		return err
	}
	merged := ranktree.Merge(a, b, s.config.CombineFunc())
	s.trees[args[0]] = merged
	fmt.Fprintf(s.out, "%s: %d keys, height %d\n", args[0], merged.Len(), merged.Height())
	return nil
}

func (s *Session) cmdKeys(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	for _, key := range tree.Keys() {
		fmt.Fprintln(s.out, key)
	}
	return nil
}

func (s *Session) cmdPrint(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, tree.Print())
	return nil
}

func (s *Session) cmdCheck(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	if err := tree.Validate(); err != nil {
		return fmt.Errorf("%s: %v", args[0], err)
	}
	fmt.Fprintln(s.out, styles.Success.Render(args[0]+": ok"))
	return nil
}

func (s *Session) cmdSize(args []string) error {
	tree, err := s.tree(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, tree.Len())
	return nil
}

func (s *Session) cmdTrees(args []string) error {
	names := make([]string, 0, len(s.trees))
	for name := range s.trees {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(s.out, "%s (%d keys)\n", name, s.trees[name].Len())
	}
	return nil
}

func (s *Session) cmdHelp(args []string) error {
	usages := make([]string, 0, len(sessionCommands))
	for _, cmd := range sessionCommands {
		usages = append(usages, cmd.usage)
	}
	sort.Strings(usages)
	for _, usage := range usages {
		fmt.Fprintln(s.out, "  "+usage)
	}
	return nil
}

func formatEntry(key string, value float64) string {
	return fmt.Sprintf("%s\t%s", key, strconv.FormatFloat(value, 'g', -1, 64))
}
