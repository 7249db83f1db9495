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

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetMultiline prints a prompt to w and reads lines until an empty line is
// entered. The collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
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

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetLines prompts for free-form lines, one value per line, ending on an
// empty line. Used for attachment and picture path lists.
func GetLines(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(one per line, empty line to finish)\n"); err != nil {
		return nil, err
	}

	lines := make([]string, 0)
	for {
		line, _ := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, strings.TrimSpace(line))
	}
	return lines, nil
}

// GetChoice prints a numbered option list and reads a selection, accepting
// either the number or the exact option text. The chosen option is
// returned verbatim.
func GetChoice(reader *bufio.Reader, prompt string, options []string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintln(w, prompt); err != nil {
		return "", err
	}
	for i, opt := range options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, opt)
	}

	answer, err := GetSimpleText(reader, "", w)
	if err != nil {
		return "", err
	}
	if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	for _, opt := range options {
		if strings.EqualFold(opt, answer) {
			return opt, nil
		}
	}
	// Let the store-level validation produce the error message.
	return answer, nil
}
