package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{"S", TierS},
		{"s", TierS},
		{"none", TierNone},
		{"0", TierNone},
		{"4", TierA},
		{" d ", TierD},
	}
	for _, tt := range tests {
		got, err := ParseTier(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, in := range []string{"", "E", "6", "-1"} {
		_, err := ParseTier(in)
		assert.ErrorIs(t, err, ErrInvalidTier, in)
	}
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "S", TierS.String())
	assert.Equal(t, "None", TierNone.String())
	assert.Equal(t, "Tier(9)", Tier(9).String())
	assert.False(t, Tier(9).IsValid())
}

func TestParseCategoryType(t *testing.T) {
	got, err := ParseCategoryType("Books")
	require.NoError(t, err)
	assert.Equal(t, CategoryTypeBooks, got)

	got, err = ParseCategoryType("3")
	require.NoError(t, err)
	assert.Equal(t, CategoryTypeFilms, got)

	_, err = ParseCategoryType("music")
	assert.ErrorIs(t, err, ErrInvalidCategoryType)
	_, err = ParseCategoryType("4")
	assert.ErrorIs(t, err, ErrInvalidCategoryType)
}

func TestIsExternalSrc(t *testing.T) {
	assert.True(t, IsExternalSrc("https://images.example.com/a.png"))
	assert.True(t, IsExternalSrc("http://cdn.example.com/a.png"))
	assert.False(t, IsExternalSrc("2024/05/01/cover.png"))
	assert.False(t, IsExternalSrc("/images/cover.png"))
	assert.False(t, IsExternalSrc("ftp://example.com/a.png"))
	assert.False(t, IsExternalSrc(""))
	assert.Equal(t, "images/cover.png", ObjectKey(" /images/cover.png"))
}
