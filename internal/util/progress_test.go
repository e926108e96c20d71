package util

import (
	"bytes"
	"testing"
)

func TestProgressWithoutTerminal(t *testing.T) {
	var out bytes.Buffer

	progress := NewProgress(&out)
	progress.Start()
	progress.Update(3, 10)
	progress.Stop()

	if out.Len() != 0 {
		t.Errorf("progress drew %q on a non-terminal writer", out.String())
	}
}
