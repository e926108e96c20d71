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

package tournament

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var recordHeader = []string{
	"P1Name", "P2Name", "NumRuns",
	"P1WinPercent", "P2WinPercent",
	"P1RunTime", "P2RunTime",
	"Session",
}

// Record writes the summary as a csv file into the given directory and
// returns the path of the new file. The file is named after the agents
// and the time it was written at.
func (summary *Summary) Record(dir string, at time.Time) (path string, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("record results: %w", err)
	}

	name := fmt.Sprintf(
		"%s_vs_%s_at_%s.csv",
		fileSafe(summary.Players[0]), fileSafe(summary.Players[1]),
		at.Format("2006-01-02-15-04-05"),
	)

	path = filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("record results: %w", err)
	}

	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			path, err = "", fmt.Errorf("record results: %w", cerr)
		}
	}()

	float := func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(recordHeader); err != nil {
		return "", fmt.Errorf("record results: %w", err)
	}

	if err := writer.Write([]string{
		summary.Players[0], summary.Players[1],
		strconv.Itoa(summary.Runs),
		float(summary.Agents[0].WinRate), float(summary.Agents[1].WinRate),
		strconv.FormatFloat(summary.Agents[0].MaxTurn.Seconds(), 'f', 5, 64),
		strconv.FormatFloat(summary.Agents[1].MaxTurn.Seconds(), 'f', 5, 64),
		summary.Session,
	}); err != nil {
		return "", fmt.Errorf("record results: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("record results: %w", err)
	}

	return path, nil
}

// fileSafe replaces the characters of an agent name which can not be
// part of a file name.
func fileSafe(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '-'
		}

		return r
	}, name)
}
