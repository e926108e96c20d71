package agents

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/referee/pkg/eve/games/ataxx"
)

// writeEngine writes a shell script engine which answers the handshake
// and replies to go with the given line. Every go command it receives
// is appended to the returned log file.
func writeEngine(t *testing.T, reply string) (string, string) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "engine.sh")
	log := filepath.Join(dir, "go.log")

	script := "#!/bin/sh\n" +
		"while read -r line; do\n" +
		"  case \"$line\" in\n" +
		"    uai) echo uaiok ;;\n" +
		"    isready) echo readyok ;;\n" +
		"    go*) echo \"$line\" >> '" + log + "'; " + reply + " ;;\n" +
		"    quit) exit 0 ;;\n" +
		"  esac\n" +
		"done\n"

	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	return path, log
}

func TestExternalMove(t *testing.T) {
	path, log := writeEngine(t, "echo info depth 1; echo bestmove a6")

	agent, err := StartExternal(ExternalConfig{Name: "script", Cmd: path, TimeC: "2/10+0"}, logrus.New())
	if err != nil {
		t.Fatal(err)
	}
	defer agent.Close()

	move, err := agent.Move(startPosition(t))
	if err != nil {
		t.Fatal(err)
	}

	if move.String() != "a6" {
		t.Errorf("move = %s, want a6", move)
	}

	if clock := agent.clocks[ataxx.Seat1]; clock.Left >= clock.Base || clock.Moves != 1 {
		t.Errorf("clock was not spent: %+v", clock)
	}

	data, err := os.ReadFile(log)
	if err != nil {
		t.Fatal(err)
	}

	if got := string(data); !strings.HasPrefix(got, "go btime 10000 wtime 10000 binc 0 winc 0 movestogo 2") {
		t.Errorf("engine got %q", got)
	}
}

func TestExternalTimeout(t *testing.T) {
	path, _ := writeEngine(t, ":")

	agent, err := StartExternal(ExternalConfig{Name: "silent", Cmd: path, TimeC: "0.2+0"}, logrus.New())
	if err != nil {
		t.Fatal(err)
	}
	defer agent.Close()

	if _, err := agent.Move(startPosition(t)); !errors.Is(err, ErrReadTimeout) {
		t.Errorf("err = %v, want %v", err, ErrReadTimeout)
	}
}

func TestExternalExits(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}

	path := filepath.Join(t.TempDir(), "exit.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := StartExternal(ExternalConfig{Name: "quitter", Cmd: path}, nil); err == nil {
		t.Error("started an engine which exits at once")
	}
}

func TestExternalClose(t *testing.T) {
	path, _ := writeEngine(t, "echo bestmove a6")

	agent, err := StartExternal(ExternalConfig{Name: "script", Cmd: path}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := agent.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}

	if err := agent.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}

	if err := Close(agent); err != nil {
		t.Errorf("close through the agent interface: %v", err)
	}
}
