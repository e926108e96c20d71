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

package agents

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/referee/pkg/eve/games/ataxx"
)

// Agent decides the moves of one seat at the board.
type Agent interface {
	Name() string

	// Move returns the move to play for the side to move in the given
	// position, which is a copy owned by the agent.
	Move(position ataxx.Position) (ataxx.Move, error)
}

// Constructor creates a new Agent instance for a single game, which
// logs to the given logger.
type Constructor func(log *logrus.Logger) (Agent, error)

var ErrUnknownAgent = errors.New("unknown agent")

// Registry maps agent names to their constructors.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry returns a Registry holding the built-in agents.
func NewRegistry() *Registry {
	registry := &Registry{constructors: map[string]Constructor{}}

	registry.Register(RandomName, func(*logrus.Logger) (Agent, error) {
		return NewRandom(nil), nil
	})

	registry.Register(GreedyName, func(*logrus.Logger) (Agent, error) {
		return NewGreedy(nil), nil
	})

	registry.Register(HumanName, func(*logrus.Logger) (Agent, error) {
		return NewHuman(os.Stdin, os.Stdout), nil
	})

	return registry
}

// Register adds an agent to the registry, replacing any agent which was
// registered under the same name.
func (registry *Registry) Register(name string, constructor Constructor) {
	registry.constructors[name] = constructor
}

// New creates an instance of the agent with the given name. A nil log
// means the standard logger.
func (registry *Registry) New(name string, log *logrus.Logger) (Agent, error) {
	constructor, found := registry.constructors[name]
	if !found {
		return nil, fmt.Errorf("%w %q: run \x1b[33mreferee agents\x1b[0m to list the available agents", ErrUnknownAgent, name)
	}

	if log == nil {
		log = logrus.StandardLogger()
	}

	return constructor(log)
}

// Names returns the names of every registered agent in sorted order.
func (registry *Registry) Names() []string {
	names := make([]string, 0, len(registry.constructors))
	for name := range registry.constructors {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Close releases the resources held by an agent, if any.
func Close(agent Agent) error {
	if closer, ok := agent.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
