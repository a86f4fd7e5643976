package deck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cardgamego/cardlist/internal/card"
)

func TestDefaultPaths(t *testing.T) {
	t.Parallel()

	paths := Default().Paths()
	require.Len(t, paths, 52)
	require.Equal(t, "assets/images/cards/fronts/c1.png", paths[0])
	require.Equal(t, "assets/images/cards/fronts/sK.png", paths[51])
}

func TestFolderTrailingSlash(t *testing.T) {
	t.Parallel()

	c := card.Card{Suit: card.Hearts, Rank: card.Ten}
	require.Equal(t, "fronts/hX.png", New("fronts/").ImagePath(c))
	require.Equal(t, "fronts/hX.png", New("fronts").ImagePath(c))
	require.Equal(t, "hX.png", New("").ImagePath(c))
}
