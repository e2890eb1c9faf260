package corpus

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/poiesic/embedkit/core"
)

// ReadWordList reads an ordered word list, one word per line. Blank lines
// and surrounding whitespace are dropped. Returns core.ErrDuplicateWord if
// the same word appears twice and ErrEmptyWordList if nothing remains.
func ReadWordList(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	if err := core.ValidateWordList(words); err != nil {
		return nil, err
	}

	return words, nil
}

// ReadWordListFile reads a word list from a file.
func ReadWordListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWordList(f)
}
