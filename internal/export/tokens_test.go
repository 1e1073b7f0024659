package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTokenSet_Counts(t *testing.T) {
	set := BuildTokenSet()

	assert.Len(t, set.Values, 59)
	assert.Len(t, set.Semantic, 33)
	assert.Len(t, set.Fonts, 24)
	assert.Len(t, set.Shadows, 8)

	for _, s := range set.Semantic {
		assert.Len(t, s.Resolutions, len(Appearances), s.Name)
	}
}

func TestBuildTokenSet_BackgroundPrimary(t *testing.T) {
	set := BuildTokenSet()
	bg := set.Semantic[0]
	require.Equal(t, "backgroundPrimary", bg.Name)
	assert.False(t, bg.HighContrast)

	assert.Equal(t, "white", bg.Resolutions[0].Value)
	assert.Equal(t, "#ffffff", bg.Resolutions[0].Hex)
	assert.Equal(t, "black3", bg.Resolutions[1].Value)
	assert.Equal(t, 1.0, bg.Resolutions[1].Alpha)
}

func TestBuildTokenSet_ShadowRadius(t *testing.T) {
	for _, s := range BuildTokenSet().Shadows {
		assert.Equal(t, s.Blur/2, s.Radius, s.Name)
		assert.Equal(t, float32(1), s.Opacity, s.Name)
	}
}

func TestWriteTokensJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTokensJSON(&buf, BuildTokenSet()))

	var decoded TokenSet
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "blue1", decoded.Values[0].Name)
	assert.Equal(t, "#0e6eb4", decoded.Values[0].Hex)
}

func TestExportTokensJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, ExportTokensJSON(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(1000))
}

func TestBuildTokenSet_SwatchIsComposited(t *testing.T) {
	set := BuildTokenSet()
	byName := make(map[string]SemanticToken)
	for _, s := range set.Semantic {
		byName[s.Name] = s
	}

	primary := byName["bluePrimary"].Resolutions[0]
	assert.Equal(t, primary.Hex, primary.Swatch)

	tint := byName["blueTint25"].Resolutions[0]
	assert.Len(t, tint.Swatch, 7)
	assert.NotEqual(t, primary.Swatch, tint.Swatch)
	assert.Equal(t, primary.Hex, tint.Hex[:7])
}
