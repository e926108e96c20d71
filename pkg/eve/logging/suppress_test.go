package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSuppress(t *testing.T) {
	var out bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&out)
	logger.SetLevel(logrus.DebugLevel)

	func() {
		quiet := Suppress(logger, logrus.WarnLevel)
		defer quiet.Restore()

		logger.Info("hidden info")
		logger.Debug("hidden debug")
		logger.Warn("visible warning")
	}()

	logger.Info("visible info")

	if strings.Contains(out.String(), "hidden") {
		t.Errorf("suppressed entries were logged: %q", out.String())
	}

	for _, msg := range []string{"visible warning", "visible info"} {
		if !strings.Contains(out.String(), msg) {
			t.Errorf("%q was not logged: %q", msg, out.String())
		}
	}

	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want %v", logger.GetLevel(), logrus.DebugLevel)
	}
}

func TestSuppressRestoresOnPanic(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	func() {
		defer func() { _ = recover() }()

		quiet := Suppress(logger, logrus.ErrorLevel)
		defer quiet.Restore()

		panic("match crashed")
	}()

	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want %v", logger.GetLevel(), logrus.InfoLevel)
	}
}

func TestSuppressNeverRaises(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	quiet := Suppress(logger, logrus.WarnLevel)
	if logger.GetLevel() != logrus.ErrorLevel {
		t.Errorf("level = %v, want %v", logger.GetLevel(), logrus.ErrorLevel)
	}

	quiet.Restore()
	if logger.GetLevel() != logrus.ErrorLevel {
		t.Errorf("level after restore = %v, want %v", logger.GetLevel(), logrus.ErrorLevel)
	}
}
