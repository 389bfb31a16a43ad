package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetInt prompts for a positive integer and re-prompts until one is given.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	for {
		text, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil && n > 0 {
			return n, nil
		}
		if _, err := fmt.Fprintln(w, "Please enter a positive number."); err != nil {
			return 0, err
		}
	}
}

// GetIntDefault prompts for a positive integer, showing def as the current
// value; an empty answer keeps it. Without a positive default it behaves
// exactly like GetInt.
func GetIntDefault(reader *bufio.Reader, prompt string, def int, w io.Writer) (int, error) {
	if def <= 0 {
		return GetInt(reader, prompt, w)
	}
	for {
		text, err := GetSimpleText(reader, fmt.Sprintf("%s [%d]", prompt, def), w)
		if err != nil {
			return 0, err
		}
		if text == "" {
			return def, nil
		}
		n, err := strconv.Atoi(text)
		if err == nil && n > 0 {
			return n, nil
		}
		if _, err := fmt.Fprintln(w, "Please enter a positive number."); err != nil {
			return 0, err
		}
	}
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetLines prints a prompt to w and reads lines until an empty line is
// entered. Each line becomes one element of the result; trailing newlines
// are trimmed. Useful for ingredient and instruction lists.
func GetLines(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return nil, err
	}

	var lines []string
	for {
		line, _ := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return lines, nil
}
