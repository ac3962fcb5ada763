package affine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAnimationDebugHold(t *testing.T) {
	var buf bytes.Buffer
	old := debugOutput
	debugOutput = &buf
	defer func() { debugOutput = old }()

	from := NewScale(0, 0)
	to := NewRotate(1)
	a := NewAnimation(&from, &to, 1.0, ease.Linear)
	a.Name = "collapse"

	a.Update(0.5)
	if buf.Len() != 0 {
		t.Errorf("debug off should print nothing, got %q", buf.String())
	}

	a.Debug = true
	a.Update(0.25)
	out := buf.String()
	if !strings.HasPrefix(out, "[affine] warning: animation \"collapse\" holding identity") {
		t.Errorf("unexpected debug output %q", out)
	}
	if !strings.Contains(out, "cannot decompose from matrix") {
		t.Errorf("debug output should name the failing side: %q", out)
	}
}

func TestAnimationDebugHoldWarnsOncePerStreak(t *testing.T) {
	var buf bytes.Buffer
	old := debugOutput
	debugOutput = &buf
	defer func() { debugOutput = old }()

	from := NewScale(0, 0)
	to := NewRotate(1)
	a := NewAnimation(&from, &to, 1.0, ease.Linear)
	a.Debug = true
	for i := 0; i < 5; i++ {
		a.Update(0.1)
	}
	if n := strings.Count(buf.String(), "[affine] warning"); n != 1 {
		t.Errorf("got %d warnings for one failing streak, want 1:\n%s", n, buf.String())
	}

	a.Reset()
	a.Update(0.1)
	if n := strings.Count(buf.String(), "[affine] warning"); n != 2 {
		t.Errorf("got %d warnings after Reset, want 2:\n%s", n, buf.String())
	}
}
