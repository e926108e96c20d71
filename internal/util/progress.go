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

package util

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// SPIN is the spinner character set used by the referee.
const SPIN = 31

// Progress shows a spinner with a run counter while a tournament plays.
type Progress struct {
	spinner *spinner.Spinner
}

// NewProgress creates a Progress which draws on the given writer. The
// spinner stays hidden unless the writer is a terminal.
func NewProgress(w io.Writer) *Progress {
	file, ok := w.(*os.File)
	if !ok {
		return &Progress{}
	}

	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriterFile(file))
	_ = s.Color("yellow")
	return &Progress{spinner: s}
}

func (progress *Progress) Start() {
	if progress.spinner != nil {
		progress.spinner.Start()
	}
}

// Update sets the run counter shown next to the spinner.
func (progress *Progress) Update(run, runs int) {
	if progress.spinner == nil {
		return
	}

	progress.spinner.Lock()
	progress.spinner.Suffix = fmt.Sprintf(" playing matches: %d/%d", run, runs)
	progress.spinner.Unlock()
}

func (progress *Progress) Stop() {
	if progress.spinner != nil {
		progress.spinner.Stop()
	}
}
