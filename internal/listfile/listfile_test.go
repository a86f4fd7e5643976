package listfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cardgamego/cardlist/internal/card"
	"github.com/cardgamego/cardlist/internal/deck"
)

const folder = "assets/images/cards/fronts"

func TestWriteList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, deck.Default(), FormatList))

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 52)
	require.Equal(t, `"assets/images/cards/fronts/c1.png",`, lines[0])
	require.Equal(t, `"assets/images/cards/fronts/sK.png",`, lines[51])

	// Every line appears exactly once, in suit-major order.
	i := 0
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			want := `"` + folder + "/" + string(s) + string(r) + `.png",`
			require.Equal(t, want, lines[i], "line %d", i+1)
			require.Equal(t, 1, strings.Count(out, want+"\n"))
			i++
		}
	}
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, deck.Default(), FormatYAML))

	var paths []string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &paths))
	require.Equal(t, deck.Default().Paths(), paths)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatList, f)

	f, err = ParseFormat("yaml")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, f)

	_, err = ParseFormat("json")
	require.ErrorContains(t, err, "unknown format")
}

func TestGenerateIsDeterministic(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "output.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than nothing\n"), 0644))

	// --- Act ---
	require.NoError(t, Generate(path, deck.Default(), FormatList))
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, Generate(path, deck.Default(), FormatList))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	// --- Assert ---
	require.Equal(t, first, second)
	require.NotContains(t, string(first), "stale")

	var want bytes.Buffer
	require.NoError(t, Write(&want, deck.Default(), FormatList))
	require.Equal(t, want.Bytes(), first)
}

func TestGenerateUnwritablePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "output.txt")
	err := Generate(path, deck.Default(), FormatList)
	require.Error(t, err)
	require.Contains(t, err.Error(), "error creating")
	require.NoFileExists(t, path)
}
