package tournament

import (
	"bytes"
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/referee/pkg/eve/match"
	"laptudirm.com/x/referee/pkg/eve/match/matchtest"
	"laptudirm.com/x/referee/pkg/eve/roster"
	"laptudirm.com/x/referee/pkg/eve/stats"
)

func testConfig() match.Config {
	config := match.DefaultConfig()
	config.Player1, config.Player2 = "strong", "weak"
	config.BoardRosterDir = ""
	return config
}

func newTestTournament(t *testing.T, config match.Config, build func(match.EngineConfig) *matchtest.Engine) (*Tournament, *[]*matchtest.Engine, *bytes.Buffer) {
	t.Helper()

	var created []*matchtest.Engine
	var out bytes.Buffer

	log := logrus.New()
	log.SetOutput(&out)
	log.SetLevel(logrus.InfoLevel)

	tour, err := NewTournament(
		config, matchtest.Factory(build, &created),
		WithRoster(roster.New("a.board", "b.board", "c.csv")),
		WithRand(rand.New(rand.NewSource(1))),
		WithLogger(log),
	)
	if err != nil {
		t.Fatal(err)
	}

	return tour, &created, &out
}

// seatOneWins builds matches which are always won by whoever sits at seat 1.
func seatOneWins(match.EngineConfig) *matchtest.Engine {
	return &matchtest.Engine{
		Turns:    4,
		Scores:   [2]float64{30, 19},
		TurnTime: [2]time.Duration{time.Millisecond, time.Millisecond},
	}
}

// strongWins builds matches which are always won by the agent "strong".
func strongWins(config match.EngineConfig) *matchtest.Engine {
	scores := [2]float64{40, 9}
	if config.Seats[1] == "strong" {
		scores[0], scores[1] = scores[1], scores[0]
	}

	return &matchtest.Engine{
		Turns:    4,
		Scores:   scores,
		TurnTime: [2]time.Duration{2 * time.Millisecond, time.Millisecond},
	}
}

func TestAutoplaySeatSymmetry(t *testing.T) {
	tour, created, _ := newTestTournament(t, testConfig(), seatOneWins)

	const runs = 100
	summary, err := tour.Autoplay(context.Background(), runs)
	if err != nil {
		t.Fatal(err)
	}

	if len(*created) != runs {
		t.Fatalf("played %d matches, want %d", len(*created), runs)
	}

	for i, engine := range *created {
		want := [2]string{"strong", "weak"}
		if i%2 == 0 {
			want = [2]string{"weak", "strong"}
		}

		if engine.Config.Seats != want {
			t.Fatalf("match %d: seats = %v, want %v", i, engine.Config.Seats, want)
		}
	}

	for i, agent := range summary.Agents {
		if math.Abs(agent.WinRate-0.5) > 1e-9 {
			t.Errorf("agent %d win rate = %v, want 0.5", i+1, agent.WinRate)
		}
	}
}

func TestAutoplayCanonicalizesResults(t *testing.T) {
	tour, _, _ := newTestTournament(t, testConfig(), strongWins)

	summary, err := tour.Autoplay(context.Background(), 9)
	if err != nil {
		t.Fatal(err)
	}

	if summary.Agents[0].WinRate != 1 || summary.Agents[1].WinRate != 0 {
		t.Errorf("win rates = %v/%v, want 1/0", summary.Agents[0].WinRate, summary.Agents[1].WinRate)
	}

	if sum := summary.Agents[0].WinRate + summary.Agents[1].WinRate; math.Abs(sum-1) > 1e-9 {
		t.Errorf("win rates sum to %v, want 1", sum)
	}

	// seat 1 turns take 2ms, and both agents sat there at least once
	for i, agent := range summary.Agents {
		if agent.MaxTurn != 2*time.Millisecond {
			t.Errorf("agent %d max turn = %v, want 2ms", i+1, agent.MaxTurn)
		}
	}

	if summary.Elo.Elo <= 0 {
		t.Errorf("elo = %v, want > 0", summary.Elo.Elo)
	}
}

func TestAutoplayDraws(t *testing.T) {
	tour, _, _ := newTestTournament(t, testConfig(), func(match.EngineConfig) *matchtest.Engine {
		return &matchtest.Engine{Turns: 2, Scores: [2]float64{24, 24}}
	})

	summary, err := tour.Autoplay(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}

	for i, agent := range summary.Agents {
		if agent.WinRate != 0.5 {
			t.Errorf("agent %d win rate = %v, want 0.5", i+1, agent.WinRate)
		}
	}
}

func TestAutoplayLogging(t *testing.T) {
	tour, _, out := newTestTournament(t, testConfig(), seatOneWins)

	if _, err := tour.Autoplay(context.Background(), 4); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(out.String(), "Run finished") {
		t.Errorf("match reports were logged during autoplay: %q", out.String())
	}

	for _, line := range []string{"Player 1, agent strong", "Player 2, agent weak"} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("summary %q was not logged: %q", line, out.String())
		}
	}

	if level := tour.log.GetLevel(); level != logrus.InfoLevel {
		t.Errorf("level = %v, want %v", level, logrus.InfoLevel)
	}
}

func TestAutoplayFailure(t *testing.T) {
	crash := errors.New("illegal move")

	played := 0
	tour, _, _ := newTestTournament(t, testConfig(), func(config match.EngineConfig) *matchtest.Engine {
		played++
		engine := seatOneWins(config)
		if played == 3 {
			engine.Err = crash
		}

		return engine
	})

	summary, err := tour.Autoplay(context.Background(), 10)
	if !errors.Is(err, crash) {
		t.Fatalf("err = %v, want %v", err, crash)
	}

	if summary != nil {
		t.Errorf("summary = %+v, want nil", summary)
	}

	if played != 3 {
		t.Errorf("played %d matches, want 3", played)
	}

	if IsConfigurationError(err) {
		t.Errorf("match failure reported as a configuration error: %v", err)
	}

	if level := tour.log.GetLevel(); level != logrus.InfoLevel {
		t.Errorf("level = %v, want %v", level, logrus.InfoLevel)
	}
}

func TestAutoplayDisablesDisplay(t *testing.T) {
	config := testConfig()
	config.Display.Enabled = true

	tour, created, out := newTestTournament(t, config, seatOneWins)
	if _, err := tour.Autoplay(context.Background(), 3); err != nil {
		t.Fatal(err)
	}

	for i, engine := range *created {
		if engine.Config.Display.Enabled {
			t.Errorf("match %d was displayed", i+1)
		}
	}

	if n := strings.Count(out.String(), "display will be disabled"); n != 1 {
		t.Errorf("display warning logged %d times, want 1", n)
	}

	if !tour.Config.Display.Enabled {
		t.Error("tournament config was modified")
	}
}

func TestAutoplayWithoutTimings(t *testing.T) {
	tour, _, _ := newTestTournament(t, testConfig(), func(match.EngineConfig) *matchtest.Engine {
		return &matchtest.Engine{Turns: 1, Scores: [2]float64{1, 0}}
	})

	_, err := tour.Autoplay(context.Background(), 1)
	if !errors.Is(err, stats.ErrNoTimings) || !IsConfigurationError(err) {
		t.Fatalf("err = %v, want a configuration error wrapping %v", err, stats.ErrNoTimings)
	}
}

func TestAutoplayInvalidRuns(t *testing.T) {
	tour, created, _ := newTestTournament(t, testConfig(), seatOneWins)

	if _, err := tour.Autoplay(context.Background(), 0); !IsConfigurationError(err) {
		t.Errorf("err = %v, want a configuration error", err)
	}

	if len(*created) != 0 {
		t.Errorf("played %d matches, want 0", len(*created))
	}
}

func TestNewTournamentEmptyRoster(t *testing.T) {
	config := testConfig()
	config.BoardRosterDir = t.TempDir()

	built := false
	_, err := NewTournament(config, func(match.EngineConfig) (match.Engine, error) {
		built = true
		return nil, nil
	})

	if !IsConfigurationError(err) || !errors.Is(err, roster.ErrEmptyRoster) {
		t.Fatalf("err = %v, want a configuration error wrapping %v", err, roster.ErrEmptyRoster)
	}

	if built {
		t.Error("an engine was built for an unusable roster")
	}
}

func TestAutoplayProgress(t *testing.T) {
	var calls []int
	tour, _, _ := newTestTournament(t, testConfig(), seatOneWins)
	WithProgress(func(run, runs int) {
		if runs != 3 {
			t.Errorf("runs = %d, want 3", runs)
		}
		calls = append(calls, run)
	})(tour)

	if _, err := tour.Autoplay(context.Background(), 3); err != nil {
		t.Fatal(err)
	}

	if len(calls) != 3 || calls[2] != 3 {
		t.Errorf("progress calls = %v, want [1 2 3]", calls)
	}
}

func TestAutoplaySPRT(t *testing.T) {
	var created []*matchtest.Engine

	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	tour, err := NewTournament(
		testConfig(), matchtest.Factory(strongWins, &created),
		WithRoster(roster.New("a.board")),
		WithLogger(log),
		WithSPRT(stats.NewSPRT(0, 10, 0.05, 0.05)),
	)
	if err != nil {
		t.Fatal(err)
	}

	const runs = 1000
	summary, err := tour.Autoplay(context.Background(), runs)
	if err != nil {
		t.Fatal(err)
	}

	if summary.Hypothesis != stats.H1 {
		t.Errorf("hypothesis = %v, want H1", summary.Hypothesis)
	}

	if summary.Runs >= runs || summary.Runs != len(created) {
		t.Errorf("runs = %d with %d matches, want an early stop", summary.Runs, len(created))
	}

	if summary.Wins != summary.Runs || summary.Agents[0].WinRate != 1 {
		t.Errorf("wins = %d of %d, want all", summary.Wins, summary.Runs)
	}
}

func TestAutoplaySuppressesMatchLogger(t *testing.T) {
	var loggers []*logrus.Logger
	var levels []logrus.Level

	tour, _, _ := newTestTournament(t, testConfig(), func(config match.EngineConfig) *matchtest.Engine {
		loggers = append(loggers, config.Log)
		levels = append(levels, config.Log.GetLevel())
		return seatOneWins(config)
	})

	if _, err := tour.Autoplay(context.Background(), 3); err != nil {
		t.Fatal(err)
	}

	for i := range loggers {
		if loggers[i] != tour.log {
			t.Errorf("match %d: engine got another logger than the tournament's", i+1)
		}

		if levels[i] != QuietLevel {
			t.Errorf("match %d: engine logger level = %v, want %v", i+1, levels[i], QuietLevel)
		}
	}

	if tour.log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level after autoplay = %v, want info", tour.log.GetLevel())
	}
}
