package clipboard

import (
	"bytes"
	"testing"
)

func TestWriteOSC52(t *testing.T) {
	var buf bytes.Buffer
	if err := writeOSC52(&buf, "HomeNet"); err != nil {
		t.Fatalf("writeOSC52() error: %v", err)
	}
	want := "\x1b]52;c;SG9tZU5ldA==\x07"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteNeverFailsWithoutClipboard(t *testing.T) {
	var buf bytes.Buffer
	old := fallback
	fallback = &buf
	defer func() { fallback = old }()

	if err := Write("Coffee Shop"); err != nil {
		t.Errorf("Write() error: %v", err)
	}
}
