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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/referee/pkg/eve/games/ataxx"
)

// ExternalConfig describes an agent which runs as a separate process and
// talks a UAI style protocol over its standard input and output.
type ExternalConfig struct {
	Name string `yaml:"name"`
	Cmd  string `yaml:"cmd"`
	Dir  string `yaml:"dir"`
	Arg  string `yaml:"arg"`

	// Protocol prefix of the handshake commands, "uai" by default.
	Protocol string `yaml:"protocol"`

	InitStr string `yaml:"init-string"`

	Options map[string]string `yaml:"options"`

	// Time control, see ParseClock.
	TimeC string `yaml:"tc"`
}

var ErrReadTimeout = errors.New("engine: read i/o timeout")

// DefaultTimeControl is used by external agents without a tc.
const DefaultTimeControl = "8+0.08"

const handshakeTimeout = 5 * time.Second

var bestmove = regexp.MustCompile(`^bestmove\s+(\S+)`)

// External is a running external agent process.
type External struct {
	config ExternalConfig
	log    *logrus.Logger

	*exec.Cmd

	writer *bufio.Writer
	lines  chan string
	done   chan struct{}
	closed sync.Once
	err    error

	clocks [2]Clock
}

// StartExternal starts the agent process and performs the handshake.
// The conversation with the agent is traced to log.
func StartExternal(config ExternalConfig, log *logrus.Logger) (*External, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	if config.Protocol == "" {
		config.Protocol = "uai"
	}

	if config.TimeC == "" {
		config.TimeC = DefaultTimeControl
	}

	clock, err := ParseClock(config.TimeC)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", config.Name, err)
	}

	agent := &External{
		config: config,
		log:    log,
		clocks: [2]Clock{clock, clock},
		lines:  make(chan string),
		done:   make(chan struct{}),
	}

	agent.Cmd = exec.Command(config.Cmd, strings.Fields(config.Arg)...)
	agent.Cmd.Dir = config.Dir

	stdin, err := agent.Cmd.StdinPipe()
	if err != nil {
		return nil, err
	}

	stdout, err := agent.Cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	agent.writer = bufio.NewWriter(stdin)

	if err := agent.Cmd.Start(); err != nil {
		return nil, fmt.Errorf("agent %s: %w", config.Name, err)
	}

	go agent.read(bufio.NewReader(stdout))

	if err := agent.handshake(); err != nil {
		_ = agent.Close()
		return nil, fmt.Errorf("agent %s: %w", config.Name, err)
	}

	return agent, nil
}

func (agent *External) read(reader *bufio.Reader) {
	defer close(agent.lines)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			agent.err = err
			return
		}

		line = strings.TrimSpace(line)
		agent.log.Tracef("(%s)> %s", agent.config.Name, line)

		select {
		case agent.lines <- line:
		case <-agent.done:
			return
		}
	}
}

func (agent *External) handshake() error {
	if agent.config.InitStr != "" {
		if err := agent.Write(agent.config.InitStr); err != nil {
			return err
		}
	}

	if err := agent.Write(agent.config.Protocol); err != nil {
		return err
	}

	if _, err := agent.Await(agent.config.Protocol+"ok", handshakeTimeout); err != nil {
		return err
	}

	for name, value := range agent.config.Options {
		if err := agent.Write("setoption name %s value %s", name, value); err != nil {
			return err
		}
	}

	if err := agent.Write(agent.config.Protocol + "newgame"); err != nil {
		return err
	}

	return agent.Synchronize()
}

func (agent *External) Name() string { return agent.config.Name }

// Move sends the position to the agent and waits for its best move
// within the time left on its clock.
func (agent *External) Move(position ataxx.Position) (ataxx.Move, error) {
	if err := agent.Write("position fen %s", position.FEN()); err != nil {
		return ataxx.Move{}, err
	}

	if err := agent.Synchronize(); err != nil {
		return ataxx.Move{}, err
	}

	// x is black and o is white in the protocol
	x, o := agent.clocks[ataxx.Seat1], agent.clocks[ataxx.Seat2]
	clock := &agent.clocks[position.SideToMove]

	command := fmt.Sprintf(
		"go btime %d wtime %d binc %d winc %d",
		x.Left.Milliseconds(), o.Left.Milliseconds(),
		x.Inc.Milliseconds(), o.Inc.Milliseconds(),
	)

	if clock.MovesToGo > 0 {
		command += fmt.Sprintf(" movestogo %d", clock.Moves)
	}

	if err := agent.Write("%s", command); err != nil {
		return ataxx.Move{}, err
	}

	start := time.Now()
	line, err := agent.Await(bestmove.String(), clock.Left)
	clock.Spend(time.Since(start))

	if err != nil {
		return ataxx.Move{}, err
	}

	return ataxx.ParseMove(bestmove.FindStringSubmatch(line)[1])
}

// Synchronize waits for the agent to finish any pending work.
func (agent *External) Synchronize() error {
	if err := agent.Write("isready"); err != nil {
		return err
	}

	_, err := agent.Await("readyok", handshakeTimeout)
	return err
}

// Await waits for a line from the agent matching the given pattern,
// discarding every other line, for at most timeout.
func (agent *External) Await(pattern string, timeout time.Duration) (string, error) {
	regex := regexp.MustCompile(pattern)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			return "", ErrReadTimeout

		case line, ok := <-agent.lines:
			if !ok {
				if agent.err != nil && agent.err != io.EOF {
					return "", agent.err
				}

				return "", fmt.Errorf("engine: %s exited", agent.config.Name)
			}

			if regex.MatchString(line) {
				return line, nil
			}
		}
	}
}

func (agent *External) Write(format string, a ...any) error {
	agent.log.Tracef("(%s)< "+format, append([]any{agent.config.Name}, a...)...)

	if _, err := fmt.Fprintf(agent.writer, format+"\n", a...); err != nil {
		return err
	}

	return agent.writer.Flush()
}

// Close asks the agent to quit and kills its process. Only the first
// call has any effect.
func (agent *External) Close() error {
	var err error
	agent.closed.Do(func() {
		_ = agent.Write("quit")
		close(agent.done)

		if err = agent.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			return
		}

		err = nil
		_ = agent.Wait()
	})

	return err
}
