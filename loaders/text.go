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

package loaders

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// TextLoader reads one record per line: a key, optionally quoted, followed
// by an optional number (1 when omitted). Blank lines and lines starting
// with '#' are skipped. It accepts any file, so it is tried last.
type TextLoader struct{}

func (l *TextLoader) SupportsFile(path string) bool {
	return true
}

func (l *TextLoader) Priority() int {
	return 100
}

func (l *TextLoader) Load(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	// Increase buffer size for long keys
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields, err := shellwords.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}

		switch len(fields) {
		case 1:
			records = append(records, Record{Key: fields[0], Value: 1})
		case 2:
			value, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: value %q is not a number", lineNo, fields[1])
			}
			records = append(records, Record{Key: fields[0], Value: value})
		default:
			return nil, fmt.Errorf("line %d: expected `key [value]`, got %d fields", lineNo, len(fields))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
