package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"donut-tell-me/internal/donut"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weightedLua is the weighted formula written in Lua.
const weightedLua = `
local function weight(r) return ((r - 4) * 2 + 7) / 9 end
function rank(b, g, s)
  return (weight(b) + weight(g) + weight(s)) / 3 * 5
end
`

func TestLuaPolicyMatchesWeighted(t *testing.T) {
	p, err := NewPolicy(weightedLua, nil)
	require.NoError(t, err)
	defer p.Close()

	w := donut.Weighted{}
	for b := 1; b <= 5; b++ {
		for g := 1; g <= 5; g++ {
			for s := 1; s <= 5; s++ {
				assert.Equal(t, w.Rank(b, g, s), p.Rank(b, g, s), "ratings (%d,%d,%d)", b, g, s)
			}
		}
	}
}

func TestLuaPolicyClamps(t *testing.T) {
	p, err := NewPolicy(`function rank(b, g, s) return b + g + s end`, nil)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, 5, p.Rank(5, 5, 5))
	p2, err := NewPolicy(`function rank() return -3 end`, nil)
	require.NoError(t, err)
	defer p2.Close()
	assert.Equal(t, 0, p2.Rank(1, 1, 1))
}

func TestLuaPolicyFallsBackOnError(t *testing.T) {
	p, err := NewPolicy(`function rank(b, g, s) error("boom") end`, nil)
	require.NoError(t, err)
	defer p.Close()
	assert.Equal(t, donut.Weighted{}.Rank(4, 4, 5), p.Rank(4, 4, 5))

	p2, err := NewPolicy(`function rank() return "five" end`, nil)
	require.NoError(t, err)
	defer p2.Close()
	assert.Equal(t, donut.Weighted{}.Rank(2, 5, 5), p2.Rank(2, 5, 5))
}

func TestLoadPolicyRequiresRank(t *testing.T) {
	_, err := NewPolicy(`function score() return 1 end`, nil)
	assert.Error(t, err)

	_, err = NewPolicy(`this is not lua`, nil)
	assert.Error(t, err)
}

func TestLoadPolicyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rank.lua")
	require.NoError(t, os.WriteFile(path, []byte(weightedLua), 0o644))

	p, err := LoadPolicy(path, nil)
	require.NoError(t, err)
	defer p.Close()

	taste := donut.Taste{}
	taste.Bases[0], taste.Glazing[0], taste.Sprinkles[0] = 3, 4, 3
	assert.Equal(t, 3, taste.RankWith(p, donut.New(0, 0, 0)))
}
