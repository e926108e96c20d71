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

package match

import (
	"errors"
	"fmt"
)

var (
	// ErrStepBudget is returned when a match does not end within the
	// configured number of steps.
	ErrStepBudget = errors.New("match: step budget exceeded")

	// ErrMatchTimeout is returned when a match does not end within the
	// configured wall clock budget.
	ErrMatchTimeout = errors.New("match: time budget exceeded")
)

// ConfigurationError reports an option, or a combination of options,
// which makes it impossible to run.
type ConfigurationError struct {
	Option string
	Err    error
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %v", err.Option, err.Err)
}

func (err *ConfigurationError) Unwrap() error {
	return err.Err
}
