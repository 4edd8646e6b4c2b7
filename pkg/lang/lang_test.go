package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocales(t *testing.T) {
	assert.Equal(t, []string{"en", "ar"}, Locales())
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("en", "stats.increase")
	require.True(t, ok)
	assert.Equal(t, "Increase", s)

	s, ok = Lookup("ar", "periods.today")
	require.True(t, ok)
	assert.Equal(t, "اليوم", s)

	s, ok = Lookup("fr", "common.refresh")
	require.True(t, ok, "unknown locales fall back")
	assert.Equal(t, "Refresh", s)

	_, ok = Lookup("en", "nope.nothing")
	assert.False(t, ok)
	assert.Equal(t, "nope.nothing", T("en", "nope.nothing"))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"", "en"},
		{"ar", "ar"},
		{"ar-EG,ar;q=0.9,en;q=0.8", "ar"},
		{"en-GB", "en"},
		{"ja-JP", "en"},
		{"fr-CH, fr;q=0.9, en;q=0.8", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.accept))
		})
	}
}

func TestTable(t *testing.T) {
	table, err := Table("ar")
	require.NoError(t, err)
	assert.Equal(t, "المزيد", table["common.more"])
	assert.Len(t, table, 25)

	_, err = Table("xx")
	assert.Error(t, err)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "rtl", Direction("ar-EG"))
	assert.Equal(t, "ltr", Direction("en"))
}
