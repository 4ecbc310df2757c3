package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"
)

// maxListLine caps the accepted line length in list files. Anything
// longer is not a password someone typed; it protects the scanner
// buffer from malformed input.
const maxListLine = 4096

// Normalize returns the NFC form of s. Terminals and editors disagree
// on whether accented characters arrive composed or decomposed;
// normalizing makes "é" one rune either way, so the length metric and
// the fingerprint are stable across input methods.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// StdinIsTerminal reports whether standard input is attached to a
// terminal. Callers use it to distinguish an interactive prompt from
// piped input when labeling the audit source.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// PromptHidden reads a password without echoing it. The prompt is
// written to w (typically stderr, so it doesn't pollute piped report
// output). When stdin is not a terminal it falls back to reading one
// line, which keeps the command usable in scripts and tests.
func PromptHidden(w io.Writer, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return ReadLine(os.Stdin)
	}

	fmt.Fprint(w, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("failed to read hidden input: %w", err)
	}

	return Normalize(string(raw)), nil
}

// ReadLine reads a single line from r, trims the trailing newline, and
// normalizes it. Used for piped stdin.
func ReadLine(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimRight(line, "\r\n")
	return Normalize(line), nil
}

// ReadListFile reads passwords from a file, one per line. Blank lines
// are skipped; everything else, including leading and trailing spaces,
// is preserved because spaces are legitimate password content.
func ReadListFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open list file: %w", err)
	}
	defer f.Close()

	var passwords []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, maxListLine), maxListLine)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		passwords = append(passwords, Normalize(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read list file: %w", err)
	}

	return passwords, nil
}
