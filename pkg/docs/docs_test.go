package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages(t *testing.T) {
	pages := Pages()
	require.NotEmpty(t, pages)

	slugs := make([]string, len(pages))
	for i, p := range pages {
		slugs[i] = p.Slug
		assert.NotEmpty(t, p.Title, p.Slug)
	}
	assert.Contains(t, slugs, "stats")
	assert.Contains(t, slugs, "bar-chart")
	assert.IsNonDecreasing(t, slugs)
}

func TestGet(t *testing.T) {
	p, err := Get("pie-chart")
	require.NoError(t, err)
	assert.Equal(t, "Pie and Doughnut Charts", p.Title)

	_, err = Get("bar-chrt")
	assert.ErrorContains(t, err, `did you mean "bar-chart"`)

	_, err = Get("kubernetes")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestSearch(t *testing.T) {
	t.Run("title match ranks first", func(t *testing.T) {
		results := Search("doughnut")
		require.NotEmpty(t, results)
		assert.Equal(t, "pie-chart", results[0].Slug)
	})

	t.Run("typo in title word", func(t *testing.T) {
		results := Search("polling")
		require.NotEmpty(t, results)
		assert.Equal(t, "polling", results[0].Slug)

		results = Search("pollng")
		require.NotEmpty(t, results)
		assert.Equal(t, "polling", results[0].Slug)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Search("kubernetes"))
		assert.Nil(t, Search("   "))
	})
}
