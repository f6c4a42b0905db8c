package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon_AllEmbedded(t *testing.T) {
	names := []string{IconPlay, IconPause, IconReset, IconSparkles, IconSparklesDim, IconSettings, IconClock, IconStopwatch, IconHourglass, IconLogo}
	for _, name := range names {
		resource, err := Icon(name)
		require.NoError(t, err, name)
		assert.Equal(t, "icons/"+name, resource.Name())
		assert.Contains(t, string(resource.Content()), "<svg")
	}
}

func TestIcon_Cached(t *testing.T) {
	first := MustIcon(IconPlay)
	second := MustIcon(IconPlay)

	assert.Same(t, first, second)
}

func TestIcon_Missing(t *testing.T) {
	_, err := Icon("missing.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustIcon("missing.svg") })
}
