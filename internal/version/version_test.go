package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	t.Cleanup(func() { Version = old })

	s := String()
	if !strings.HasPrefix(s, "folio v9.9.9 ") {
		t.Errorf("String() = %q", s)
	}
	if !strings.Contains(s, "go="+GoVersion) {
		t.Errorf("String() = %q, missing go version", s)
	}
}
