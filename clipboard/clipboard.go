package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// fallback receives the OSC 52 sequence when the native clipboard is missing.
var fallback io.Writer = os.Stderr

// Write copies text to the system clipboard, falling back to OSC 52 for
// terminals without a native clipboard (SSH, tmux, headless Windows shells).
func Write(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	return writeOSC52(fallback, text)
}

func writeOSC52(w io.Writer, text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(w, "\x1b]52;c;%s\x07", encoded)
	return err
}
