package match_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/referee/pkg/eve/match"
	"laptudirm.com/x/referee/pkg/eve/match/matchtest"
)

func newRunner(config match.Config, build func(match.EngineConfig) *matchtest.Engine) (*match.Runner, *[]*matchtest.Engine, *bytes.Buffer) {
	var created []*matchtest.Engine
	var out bytes.Buffer

	log := logrus.New()
	log.SetOutput(&out)
	log.SetLevel(logrus.InfoLevel)

	return &match.Runner{
		Config:    config,
		NewEngine: matchtest.Factory(build, &created),
		Log:       log,
	}, &created, &out
}

func TestRunSeats(t *testing.T) {
	config := match.DefaultConfig()
	config.Player1, config.Player2 = "alpha", "beta"
	config.BoardPath = "default.board"

	tests := []struct {
		name  string
		swap  bool
		board string

		seats [2]string
		path  string
	}{
		{"no swap", false, "", [2]string{"alpha", "beta"}, "default.board"},
		{"swap", true, "", [2]string{"beta", "alpha"}, "default.board"},
		{"explicit board", false, "other.csv", [2]string{"alpha", "beta"}, "other.csv"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			runner, created, _ := newRunner(config, func(match.EngineConfig) *matchtest.Engine {
				return &matchtest.Engine{Turns: 3, Scores: [2]float64{4, 2}}
			})

			if _, err := runner.Run(context.Background(), test.swap, test.board); err != nil {
				t.Fatal(err)
			}

			engine := (*created)[0]
			if engine.Config.Seats != test.seats {
				t.Errorf("seats = %v, want %v", engine.Config.Seats, test.seats)
			}

			if engine.Config.BoardPath != test.path {
				t.Errorf("board = %q, want %q", engine.Config.BoardPath, test.path)
			}

			if !engine.Closed {
				t.Error("engine was not closed")
			}
		})
	}
}

func TestRunResult(t *testing.T) {
	runner, created, out := newRunner(match.DefaultConfig(), func(match.EngineConfig) *matchtest.Engine {
		return &matchtest.Engine{
			Turns:    5,
			Scores:   [2]float64{10, 39},
			TurnTime: [2]time.Duration{time.Millisecond, 2 * time.Millisecond},
		}
	})

	result, err := runner.Run(context.Background(), false, "")
	if err != nil {
		t.Fatal(err)
	}

	if result.Scores != [2]float64{10, 39} {
		t.Errorf("scores = %v, want [10 39]", result.Scores)
	}

	if (*created)[0].Steps != 5 {
		t.Errorf("steps = %d, want 5", (*created)[0].Steps)
	}

	if len(result.Times[0]) != 3 || len(result.Times[1]) != 2 {
		t.Errorf("turns timed = %d/%d, want 3/2", len(result.Times[0]), len(result.Times[1]))
	}

	if result.Outcome() != match.Loss {
		t.Errorf("outcome = %v, want %v", result.Outcome(), match.Loss)
	}

	if !strings.Contains(out.String(), "Run finished") {
		t.Errorf("match report not logged: %q", out.String())
	}
}

func TestRunStepBudget(t *testing.T) {
	config := match.DefaultConfig()
	config.MaxSteps = 50

	runner, created, _ := newRunner(config, func(match.EngineConfig) *matchtest.Engine {
		return &matchtest.Engine{Never: true}
	})

	_, err := runner.Run(context.Background(), false, "")
	if !errors.Is(err, match.ErrStepBudget) {
		t.Fatalf("err = %v, want %v", err, match.ErrStepBudget)
	}

	if (*created)[0].Steps != 50 {
		t.Errorf("steps = %d, want 50", (*created)[0].Steps)
	}

	if !(*created)[0].Closed {
		t.Error("engine was not closed")
	}
}

func TestRunTimeBudget(t *testing.T) {
	config := match.DefaultConfig()
	config.MaxSteps = 0
	config.MatchTimeout = time.Nanosecond

	runner, _, _ := newRunner(config, func(match.EngineConfig) *matchtest.Engine {
		return &matchtest.Engine{Never: true}
	})

	_, err := runner.Run(context.Background(), false, "")
	if !errors.Is(err, match.ErrMatchTimeout) {
		t.Fatalf("err = %v, want %v", err, match.ErrMatchTimeout)
	}
}

func TestRunEngineError(t *testing.T) {
	crash := errors.New("engine crashed")
	runner, created, _ := newRunner(match.DefaultConfig(), func(match.EngineConfig) *matchtest.Engine {
		return &matchtest.Engine{Turns: 2, Err: crash}
	})

	if _, err := runner.Run(context.Background(), false, ""); !errors.Is(err, crash) {
		t.Fatalf("err = %v, want %v", err, crash)
	}

	if !(*created)[0].Closed {
		t.Error("engine was not closed")
	}
}

func TestRunFactoryError(t *testing.T) {
	broken := errors.New("no such agent")
	runner := &match.Runner{
		Config: match.DefaultConfig(),
		NewEngine: func(match.EngineConfig) (match.Engine, error) {
			return nil, broken
		},
		Log: logrus.New(),
	}

	if _, err := runner.Run(context.Background(), false, ""); !errors.Is(err, broken) {
		t.Fatalf("err = %v, want %v", err, broken)
	}
}
