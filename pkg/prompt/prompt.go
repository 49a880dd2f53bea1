package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirm asks a yes/no question on the terminal. The empty answer takes the
// default. When stdin is not a terminal or cannot be read, the answer is no;
// a declined prompt and an unpromptable session are not distinguished.
func Confirm(question string, def bool) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	return confirm(os.Stdin, os.Stderr, question, def)
}

func confirm(in io.Reader, out io.Writer, question string, def bool) bool {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(out, "%s %s ", question, hint)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def
	case "y", "yes":
		return true
	default:
		return false
	}
}
