package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/ampfilter"
	"github.com/fwojciec/ampfilter/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variant(path string, format ampfilter.Format, status ampfilter.VariantStatus) *ampfilter.Variant {
	return &ampfilter.Variant{
		Path:       path,
		Format:     format,
		Status:     status,
		SourceHash: "source-" + path,
	}
}

func TestVariantService_CreateVariants(t *testing.T) {
	t.Parallel()

	t.Run("records variants with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewVariantService(setupTestDB(t))
		ctx := context.Background()
		v := variant("index.html", ampfilter.FormatStories, ampfilter.VariantGenerated)
		v.ContentHash = "abc"

		err := svc.CreateVariants(ctx, []*ampfilter.Variant{v})
		require.NoError(t, err)

		assert.NotEmpty(t, v.ID)
		assert.False(t, v.GeneratedAt.IsZero())

		found, err := svc.FindVariants(ctx, ampfilter.VariantFilter{})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, v.ID, found[0].ID)
		assert.Equal(t, "index.html", found[0].Path)
		assert.Equal(t, ampfilter.FormatStories, found[0].Format)
		assert.Equal(t, ampfilter.VariantGenerated, found[0].Status)
		assert.Equal(t, "source-index.html", found[0].SourceHash)
		assert.Equal(t, "abc", found[0].ContentHash)
		assert.WithinDuration(t, v.GeneratedAt, found[0].GeneratedAt, time.Second)
	})

	t.Run("replaces earlier record for same path and format", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewVariantService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateVariants(ctx, []*ampfilter.Variant{
			variant("index.html", ampfilter.FormatAds, ampfilter.VariantUnavailable),
		}))
		require.NoError(t, svc.CreateVariants(ctx, []*ampfilter.Variant{
			variant("index.html", ampfilter.FormatAds, ampfilter.VariantGenerated),
		}))

		found, err := svc.FindVariants(ctx, ampfilter.VariantFilter{})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, ampfilter.VariantGenerated, found[0].Status)
	})

	t.Run("rejects invalid variant without writing", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewVariantService(setupTestDB(t))
		ctx := context.Background()

		err := svc.CreateVariants(ctx, []*ampfilter.Variant{
			variant("a.html", ampfilter.FormatAds, ampfilter.VariantGenerated),
			variant("", ampfilter.FormatAds, ampfilter.VariantGenerated),
		})

		assert.Equal(t, ampfilter.EINVALID, ampfilter.ErrorCode(err))
		found, err := svc.FindVariants(ctx, ampfilter.VariantFilter{})
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestVariantService_FindVariants(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewVariantService(db)
	ctx := context.Background()
	require.NoError(t, svc.CreateVariants(ctx, []*ampfilter.Variant{
		variant("b.html", ampfilter.FormatEmail, ampfilter.VariantUnavailable),
		variant("b.html", ampfilter.FormatWebsites, ampfilter.VariantGenerated),
		variant("a.html", ampfilter.FormatAds, ampfilter.VariantGenerated),
		variant("a.html", ampfilter.FormatStories, ampfilter.VariantGenerated),
	}))

	t.Run("orders by path and canonical format order", func(t *testing.T) {
		t.Parallel()

		found, err := svc.FindVariants(ctx, ampfilter.VariantFilter{})
		require.NoError(t, err)
		require.Len(t, found, 4)

		assert.Equal(t, "a.html", found[0].Path)
		assert.Equal(t, ampfilter.FormatStories, found[0].Format)
		assert.Equal(t, ampfilter.FormatAds, found[1].Format)
		assert.Equal(t, "b.html", found[2].Path)
		assert.Equal(t, ampfilter.FormatWebsites, found[2].Format)
		assert.Equal(t, ampfilter.FormatEmail, found[3].Format)
	})

	t.Run("filters by path", func(t *testing.T) {
		t.Parallel()

		path := "b.html"
		found, err := svc.FindVariants(ctx, ampfilter.VariantFilter{Path: &path})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("filters by format", func(t *testing.T) {
		t.Parallel()

		format := ampfilter.FormatAds
		found, err := svc.FindVariants(ctx, ampfilter.VariantFilter{Format: &format})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "a.html", found[0].Path)
	})

	t.Run("filters by status", func(t *testing.T) {
		t.Parallel()

		status := ampfilter.VariantUnavailable
		found, err := svc.FindVariants(ctx, ampfilter.VariantFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, ampfilter.FormatEmail, found[0].Format)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		found, err := svc.FindVariants(ctx, ampfilter.VariantFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, ampfilter.FormatAds, found[0].Format)
		assert.Equal(t, ampfilter.FormatWebsites, found[1].Format)
	})

	t.Run("offset without limit", func(t *testing.T) {
		t.Parallel()

		found, err := svc.FindVariants(ctx, ampfilter.VariantFilter{Offset: 3})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, ampfilter.FormatEmail, found[0].Format)
	})
}

func TestVariantService_DeleteVariantsByPath(t *testing.T) {
	t.Parallel()

	t.Run("removes all records for a path", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewVariantService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateVariants(ctx, []*ampfilter.Variant{
			variant("a.html", ampfilter.FormatAds, ampfilter.VariantGenerated),
			variant("a.html", ampfilter.FormatEmail, ampfilter.VariantGenerated),
			variant("b.html", ampfilter.FormatAds, ampfilter.VariantGenerated),
		}))

		require.NoError(t, svc.DeleteVariantsByPath(ctx, "a.html"))

		found, err := svc.FindVariants(ctx, ampfilter.VariantFilter{})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "b.html", found[0].Path)
	})

	t.Run("returns not found for unknown path", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewVariantService(setupTestDB(t))

		err := svc.DeleteVariantsByPath(context.Background(), "missing.html")

		assert.Equal(t, ampfilter.ENOTFOUND, ampfilter.ErrorCode(err))
	})
}
