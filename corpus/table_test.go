package corpus

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `id,text,author
1,"The match went to penalties",alice
2,"Quantum computing milestone reached",bob
3,"Late goal wins the derby",carol
`

func TestLoadTable(t *testing.T) {
	t.Run("locates text column", func(t *testing.T) {
		table, err := LoadTable(strings.NewReader(sampleCSV), "text")
		require.NoError(t, err)
		assert.Equal(t, 3, table.Len())

		texts := table.Texts()
		require.Len(t, texts, 3)
		assert.Equal(t, "The match went to penalties", texts[0])
		assert.Equal(t, "Late goal wins the derby", texts[2])
	})

	t.Run("missing column", func(t *testing.T) {
		_, err := LoadTable(strings.NewReader(sampleCSV), "body")
		assert.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := LoadTable(strings.NewReader("id,text\n"), "text")
		assert.ErrorIs(t, err, ErrEmptyTable)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := LoadTable(strings.NewReader(""), "text")
		assert.ErrorIs(t, err, ErrEmptyTable)
	})
}

func TestTable_WriteWithClasses(t *testing.T) {
	table, err := LoadTable(strings.NewReader(sampleCSV), "text")
	require.NoError(t, err)

	t.Run("appends class column preserving order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, table.WriteWithClasses(&buf, []string{"sports", "science", "sports"}))

		out, err := LoadTable(bytes.NewReader(buf.Bytes()), "class")
		require.NoError(t, err)
		assert.Equal(t, []string{"sports", "science", "sports"}, out.Texts())

		// Original columns survive in order.
		ids, err := LoadTable(bytes.NewReader(buf.Bytes()), "id")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, ids.Texts())
	})

	t.Run("count mismatch", func(t *testing.T) {
		var buf bytes.Buffer
		err := table.WriteWithClasses(&buf, []string{"sports"})
		assert.ErrorIs(t, err, ErrClassCountMismatch)
	})
}

func TestReadWordList(t *testing.T) {
	t.Run("reads in order, skipping blanks", func(t *testing.T) {
		words, err := ReadWordList(strings.NewReader("cat\n\n  dog \ncar\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"cat", "dog", "car"}, words)
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := ReadWordList(strings.NewReader("\n \n"))
		assert.ErrorIs(t, err, ErrEmptyWordList)
	})

	t.Run("duplicates rejected", func(t *testing.T) {
		_, err := ReadWordList(strings.NewReader("cat\ndog\ncat\n"))
		assert.Error(t, err)
	})
}
