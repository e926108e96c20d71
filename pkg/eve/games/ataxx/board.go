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

package ataxx

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadBoard reads a starting position from a board file. An empty path
// yields the standard starting position.
//
// A .board file holds a FEN on its first line which is neither blank nor
// a # comment. A .csv file holds 7 rows of 7 cell codes, top rank first:
// 0 for an empty square, 1 and 2 for stones of seat 1 and 2, 3 for a gap.
// Seat 1 is to move in positions read from csv.
func LoadBoard(path string) (*Position, error) {
	if path == "" {
		return ParseFEN(StartFEN)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}

	var pos *Position
	switch strings.ToLower(filepath.Ext(path)) {
	case ".board":
		pos, err = parseBoardFile(data)
	case ".csv":
		pos, err = parseCSVFile(data)
	default:
		return nil, fmt.Errorf("load board %s: unknown board format", path)
	}

	if err != nil {
		return nil, fmt.Errorf("load board %s: %w", path, err)
	}

	return pos, nil
}

func parseBoardFile(data []byte) (*Position, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		return ParseFEN(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("no fen found")
}

func parseCSVFile(data []byte) (*Position, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = 7

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) != 7 {
		return nil, fmt.Errorf("expected 7 rows, found %d", len(rows))
	}

	var pos Position
	pos.FullMoves = 1

	for i, row := range rows {
		for file, cell := range row {
			code, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil || code < int(Empty) || code > int(Gap) {
				return nil, fmt.Errorf("row %d: invalid cell %q", i+1, cell)
			}

			pos.Put(NewSquare(file, 6-i), Piece(code))
		}
	}

	return &pos, nil
}
