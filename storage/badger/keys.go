package badger

import "fmt"

// Key prefixes for different data types
const (
	wordEntryPrefix = "worent"
)

// makeWordKey generates a key for a word entry.
func makeWordKey(word string) []byte {
	return []byte(fmt.Sprintf("%s:%s", wordEntryPrefix, word))
}

// wordFromKey extracts the word from a word entry key.
func wordFromKey(key []byte) string {
	return string(key[len(wordEntryPrefix)+1:])
}
