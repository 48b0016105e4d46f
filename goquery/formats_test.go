package goquery_test

import (
	"testing"

	"github.com/fwojciec/ampfilter"
	"github.com/fwojciec/ampfilter/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableFormats(t *testing.T) {
	t.Parallel()

	t.Run("returns declared formats in canonical order", func(t *testing.T) {
		t.Parallel()

		formats, err := goquery.AvailableFormats(`<html data-available-formats="email websites"><body></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, []ampfilter.Format{ampfilter.FormatWebsites, ampfilter.FormatEmail}, formats)
	})

	t.Run("ignores unknown names and duplicates", func(t *testing.T) {
		t.Parallel()

		formats, err := goquery.AvailableFormats(`<html data-available-formats="stories, print, Stories"><body></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, []ampfilter.Format{ampfilter.FormatStories}, formats)
	})

	t.Run("returns nothing without attribute", func(t *testing.T) {
		t.Parallel()

		formats, err := goquery.AvailableFormats(`<html><body data-available-formats="ads"></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, formats)
	})
}
