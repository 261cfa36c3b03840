// Package input turns user text and trace files into reference streams.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var ErrMalformedInput = errors.New("malformed reference input")

// ParseReferences reads page numbers separated by commas, whitespace or
// both, e.g. "7,0,1" or "7 0 1". Blank text is a valid empty stream. An
// empty field between two commas is malformed.
func ParseReferences(text string) ([]int, error) {
	refs := make([]int, 0)
	if strings.TrimSpace(text) == "" {
		return refs, nil
	}

	for _, field := range strings.Split(text, ",") {
		tokens := strings.Fields(field)
		if len(tokens) == 0 {
			return nil, fmt.Errorf("%w: empty value at position %d", ErrMalformedInput, len(refs)+1)
		}

		for _, token := range tokens {
			page, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at position %d", ErrMalformedInput, token, len(refs)+1)
			}
			refs = append(refs, page)
		}
	}

	return refs, nil
}

// ReadTraceFile loads a trace with one reference per line. Lines may
// carry extra comma separated columns, as in "42,R"; only the first is
// used. Blank lines and lines starting with '#' are skipped.
func ReadTraceFile(path string) (refs []int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return readTrace(bufio.NewScanner(file), path)
}

func readTrace(scanner *bufio.Scanner, name string) ([]int, error) {
	var (
		refs = make([]int, 0)
		line = 0
	)

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		addr, _, _ := strings.Cut(text, ",")
		page, err := strconv.Atoi(strings.TrimSpace(addr))
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %q", ErrMalformedInput, name, line, addr)
		}
		refs = append(refs, page)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return refs, nil
}
