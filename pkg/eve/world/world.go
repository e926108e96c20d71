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

// Package world plays Ataxx games between two agents, one turn at a time.
package world

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/referee/pkg/eve/agents"
	"laptudirm.com/x/referee/pkg/eve/games/ataxx"
	"laptudirm.com/x/referee/pkg/eve/match"
)

var ErrIllegalMove = errors.New("illegal move")

// World is a single Ataxx game and implements match.Engine.
type World struct {
	position *ataxx.Position
	agents   [2]agents.Agent
	times    [2][]time.Duration

	display match.DisplayConfig
	out     io.Writer
	frames  io.WriteCloser

	moves []ataxx.Move

	log *logrus.Logger
}

// Factory returns an EngineFactory which creates Worlds with agents from
// the given registry, rendering to out when display is enabled.
func Factory(registry *agents.Registry, out io.Writer) match.EngineFactory {
	return func(config match.EngineConfig) (match.Engine, error) {
		return New(registry, config, out)
	}
}

// New loads the board and creates both agents of a new game.
func New(registry *agents.Registry, config match.EngineConfig, out io.Writer) (*World, error) {
	position, err := ataxx.LoadBoard(config.BoardPath)
	if err != nil {
		return nil, err
	}

	world := &World{
		position: position,
		display:  config.Display,
		out:      out,
		log:      config.Log,
	}

	if world.log == nil {
		world.log = logrus.StandardLogger()
	}

	for seat, name := range config.Seats {
		if world.agents[seat], err = registry.New(name, world.log); err != nil {
			_ = world.Close()
			return nil, err
		}
	}

	if config.Display.Enabled && config.Display.Save {
		if world.frames, err = createFrames(config); err != nil {
			_ = world.Close()
			return nil, err
		}
	}

	world.render()
	return world, nil
}

func createFrames(config match.EngineConfig) (*os.File, error) {
	if err := os.MkdirAll(config.Display.SavePath, 0755); err != nil {
		return nil, err
	}

	name := fmt.Sprintf(
		"%s_vs_%s_%d.txt",
		config.Seats[0], config.Seats[1], time.Now().UnixNano(),
	)

	return os.Create(filepath.Join(config.Display.SavePath, name))
}

// Step plays a single turn. The agent to move is asked for its move and
// timed, unless it has no legal move and has to pass.
func (world *World) Step() (bool, float64, float64, error) {
	if outcome, _ := world.position.Result(); outcome != ataxx.Ongoing {
		s1, s2 := world.position.Score()
		return true, s1, s2, nil
	}

	side := world.position.SideToMove
	agent := world.agents[side]

	move := ataxx.Pass
	if moves := world.position.Moves(); len(moves) != 1 || moves[0] != ataxx.Pass {
		start := time.Now()
		var err error
		move, err = agent.Move(*world.position)
		world.times[side] = append(world.times[side], time.Since(start))

		if err != nil {
			return false, 0, 0, fmt.Errorf("agent %s: %w", agent.Name(), err)
		}
	}

	if !world.position.IsLegal(move) {
		return false, 0, 0, fmt.Errorf(
			"agent %s: %w %s in %s",
			agent.Name(), ErrIllegalMove, move, world.position.FEN(),
		)
	}

	world.position.MakeMove(move)
	world.moves = append(world.moves, move)
	world.render()

	s1, s2 := world.position.Score()
	outcome, reason := world.position.Result()
	if outcome == ataxx.Ongoing {
		return false, s1, s2, nil
	}

	world.log.WithFields(logrus.Fields{
		"result": outcome,
		"reason": reason,
		"plies":  len(world.moves),
	}).Debug("Game over")

	return true, s1, s2, nil
}

// render draws the board if display is enabled.
func (world *World) render() {
	if !world.display.Enabled {
		return
	}

	frame := fmt.Sprintf("%s%s\n\n", world.position, world.position.FEN())
	if world.out != nil {
		fmt.Fprint(world.out, frame)
	}

	if world.frames != nil {
		if _, err := io.WriteString(world.frames, frame); err != nil {
			world.log.WithError(err).Warn("Unable to save board")
		}
	}

	time.Sleep(world.display.Delay)
}

func (world *World) Times() [2][]time.Duration {
	return world.times
}

// Moves returns the moves played so far.
func (world *World) Moves() []ataxx.Move {
	return world.moves
}

func (world *World) Close() error {
	var errs []error
	for _, agent := range world.agents {
		if agent != nil {
			errs = append(errs, agents.Close(agent))
		}
	}

	if world.frames != nil {
		errs = append(errs, world.frames.Close())
	}

	return errors.Join(errs...)
}
