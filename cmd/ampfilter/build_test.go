package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/ampfilter"
	main "github.com/fwojciec/ampfilter/cmd/ampfilter"
	"github.com/fwojciec/ampfilter/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("generates requested formats", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		out := t.TempDir()
		writePage(t, src, "index.html")

		var requested []ampfilter.Format
		filter := &mock.PageFilter{
			FilterFn: func(html string, format ampfilter.Format, _ bool) (string, error) {
				requested = append(requested, format)
				return "filtered", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Filter: filter,
		}

		cmd := &main.BuildCmd{Source: src, Out: out, Name: "site", Format: []string{"email"}, Concurrency: 1}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []ampfilter.Format{ampfilter.FormatEmail}, requested)
		assert.Contains(t, stdout.String(), "Generated 1 variants, 0 unavailable (8 B)")
		data, err := os.ReadFile(filepath.Join(out, "site", "email", "index.html"))
		require.NoError(t, err)
		assert.Equal(t, "filtered", string(data))
	})

	t.Run("leaves output unchanged when nothing is generated", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		out := t.TempDir()
		writePage(t, src, "index.html")

		filter := &mock.PageFilter{
			FilterFn: func(string, ampfilter.Format, bool) (string, error) {
				return "", ampfilter.Errorf(ampfilter.EUNAVAILABLE, "page is not available")
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Filter: filter,
		}

		err := (&main.BuildCmd{Source: src, Out: out, Name: "public"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No variants generated")
		_, err = os.Stat(filepath.Join(out, "public"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("reports failing page", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		writePage(t, src, "broken.html")

		renderErr := errors.New("render failed")
		filter := &mock.PageFilter{
			FilterFn: func(string, ampfilter.Format, bool) (string, error) {
				return "", renderErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Filter: filter,
		}

		err := (&main.BuildCmd{Source: src, Out: t.TempDir(), Name: "public"}).Run(deps)

		assert.ErrorIs(t, err, renderErr)
		assert.Contains(t, stderr.String(), "fail broken.html")
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		err := (&main.BuildCmd{Source: t.TempDir(), Out: t.TempDir(), Format: []string{"print"}}).Run(deps)

		assert.Equal(t, ampfilter.EINVALID, ampfilter.ErrorCode(err))
	})
}
