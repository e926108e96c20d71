// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package roster

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"laptudirm.com/x/referee/pkg/eve/match"
)

// Suffixes are the file name suffixes of board files.
var Suffixes = []string{".csv", ".board"}

var ErrEmptyRoster = errors.New("roster: no boards found")

// Roster is an immutable list of board files to choose from.
type Roster struct {
	dir    string
	boards []string
}

// New returns a Roster of the given board paths.
func New(boards ...string) Roster {
	return Roster{boards: append([]string(nil), boards...)}
}

// Discover returns a Roster of every board file in the given directory.
// A directory which does not exist, or is not a directory, results in an
// empty Roster; see Validate.
func Discover(dir string) Roster {
	roster := Roster{dir: dir}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return roster
	}

	for _, entry := range entries {
		if entry.IsDir() || !IsBoard(entry.Name()) {
			continue
		}

		roster.boards = append(roster.boards, filepath.Join(dir, entry.Name()))
	}

	return roster
}

// IsBoard reports whether name carries one of the board file Suffixes.
func IsBoard(name string) bool {
	for _, suffix := range Suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}

func (roster Roster) Len() int {
	return len(roster.boards)
}

// Boards returns a copy of the board paths in the Roster.
func (roster Roster) Boards() []string {
	return append([]string(nil), roster.boards...)
}

// Validate returns a ConfigurationError if no board can be picked from
// the Roster.
func (roster Roster) Validate() error {
	if len(roster.boards) > 0 {
		return nil
	}

	err := ErrEmptyRoster
	if roster.dir != "" {
		err = fmt.Errorf("%w in %q", ErrEmptyRoster, roster.dir)
	}

	return &match.ConfigurationError{Option: "board_roster_dir", Err: err}
}

// Pick returns a board chosen uniformly at random from the Roster.
func (roster Roster) Pick(rng *rand.Rand) (string, error) {
	if len(roster.boards) == 0 {
		return "", ErrEmptyRoster
	}

	return roster.boards[rng.Intn(len(roster.boards))], nil
}
