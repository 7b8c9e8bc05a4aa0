package application

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/battleship/internal/config"
	"github.com/rocketscienceinc/battleship/testing/suite"
)

func TestRunApp(t *testing.T) {
	// Given: a seeded configuration and a short scripted session
	_, st := suite.New(t)
	conf := &config.Config{
		LogLevel: "debug",
		Seed:     7,
		Game: config.Game{
			BoardSize:              6,
			Fleet:                  []int{3, 2, 1},
			PlacementAttempts:      100,
			RevealSunkSurroundings: true,
		},
	}

	var out bytes.Buffer
	input := strings.NewReader("board\nattack 0 0\nattack 0 0\nnew\nquit\n")

	// When: the app runs
	err := RunApp(st.Logger, conf, input, &out)

	// Then: two matches were started and the session ended cleanly
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "New match"))
	assert.Contains(t, out.String(), "You fired at [0,0]")
	assert.Contains(t, out.String(), "Bye!")
}
