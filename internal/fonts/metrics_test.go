package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedMetrics(t *testing.T) {
	assert.Equal(t, float32(14), FixedMetrics{}.Scale(Body, 14))
}

func TestDynamicType_DefaultIsIdentity(t *testing.T) {
	d := DynamicType{Size: DefaultContentSize}
	for _, s := range Styles() {
		c := ComponentsFor(s, DefaultFamily)
		assert.Equal(t, c.PointSize, d.Scale(c.TextStyle, c.PointSize), s.String())
	}
}

func TestDynamicType_MonotonicForBody(t *testing.T) {
	prev := float32(0)
	for _, c := range ContentSizes() {
		got := DynamicType{Size: c}.Scale(Body, 17)
		assert.Greater(t, got, prev, c.String())
		prev = got
	}
	assert.InDelta(t, 53.0, DynamicType{Size: AccessibilityExtraExtraExtraLarge}.Scale(Body, 17), 0.001)
}

func TestDynamicType_TitlesCapAtXXXLarge(t *testing.T) {
	capped := DynamicType{Size: ExtraExtraExtraLarge}.Scale(Title2, 36)
	assert.Equal(t, capped, DynamicType{Size: AccessibilityExtraExtraExtraLarge}.Scale(Title2, 36))
	assert.Greater(t, DynamicType{Size: AccessibilityMedium}.Scale(Headline, 20), DynamicType{Size: ExtraExtraExtraLarge}.Scale(Headline, 20))
}

func TestParseContentSize(t *testing.T) {
	c, err := ParseContentSize("xxLarge")
	require.NoError(t, err)
	assert.Equal(t, ExtraExtraLarge, c)

	c, err = ParseContentSize("ACCESSIBILITYMEDIUM")
	require.NoError(t, err)
	assert.Equal(t, AccessibilityMedium, c)

	_, err = ParseContentSize("gigantic")
	assert.Error(t, err)
}
