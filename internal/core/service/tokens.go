package service

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yndnr/makeboot-go/internal/core/domain"
)

// ReadTokens reads whitespace-separated byte tokens from r.
// A '#' starts a comment that runs to the end of the line.
// Tokens are returned unvalidated; Build checks them.
func ReadTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}
	return tokens, nil
}

// ReadTokenFile reads byte tokens from the file at path.
func ReadTokenFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.ErrIO.WithDetails("read " + path).WithCause(err)
	}
	defer f.Close()
	return ReadTokens(f)
}
