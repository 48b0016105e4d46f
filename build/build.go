// Package build generates the format variants of a tree of rendered pages.
// It coordinates reading pages, filtering them to every requested format,
// storing the output atomically and recording the outcome in a manifest.
package build

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fwojciec/ampfilter"
	"golang.org/x/sync/errgroup"
)

// Builder filters every page of a source to a set of formats.
type Builder struct {
	Source   ampfilter.PageSource
	Filter   ampfilter.PageFilter
	Store    ampfilter.VariantStore
	Variants ampfilter.VariantService // Optional manifest

	// Formats to generate. Defaults to all supported formats.
	Formats []ampfilter.Format

	// Force generates formats a page does not declare as available.
	Force bool

	Concurrency int
}

// Result holds the outcome of a build.
type Result struct {
	Pages       int
	Generated   int
	Unavailable int
	Bytes       int
}

// ProgressEvent reports progress during a build.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// Build generates all variants. Pages that do not declare a format are
// recorded as unavailable for it. Any other error aborts the store so the
// previous output stays in place; a build that generates nothing also
// leaves the previous output untouched.
func (b *Builder) Build(ctx context.Context, progress ProgressFunc) (*Result, error) {
	paths, err := b.Source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	formats := b.Formats
	if len(formats) == 0 {
		formats = ampfilter.Formats
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(paths)
	notify := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}
	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	var (
		mu        sync.Mutex
		completed int
		variants  []*ampfilter.Variant
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, path := range paths {
		g.Go(func() error {
			pageVariants, err := b.buildPage(gctx, path, formats)

			mu.Lock()
			defer mu.Unlock()
			completed++
			if err != nil {
				notify(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, Path: path, Error: err})
				return err
			}
			variants = append(variants, pageVariants...)
			notify(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, Path: path})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		_ = b.Store.Abort()
		return nil, err
	}

	result := &Result{Pages: total}
	for _, v := range variants {
		switch v.Status {
		case ampfilter.VariantGenerated:
			result.Generated++
			result.Bytes += len(v.Content)
		case ampfilter.VariantUnavailable:
			result.Unavailable++
		}
	}

	if result.Generated == 0 {
		_ = b.Store.Abort()
	} else if err := b.Store.Commit(); err != nil {
		return nil, fmt.Errorf("commit output: %w", err)
	}

	if b.Variants != nil && len(variants) > 0 {
		sortVariants(variants)
		if err := b.Variants.CreateVariants(ctx, variants); err != nil {
			return nil, fmt.Errorf("record variants: %w", err)
		}
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return result, nil
}

// buildPage filters one page to every format and saves the generated variants.
func (b *Builder) buildPage(ctx context.Context, path string, formats []ampfilter.Format) ([]*ampfilter.Variant, error) {
	page, err := b.Source.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	sourceHash := computeHash(page.Content)
	variants := make([]*ampfilter.Variant, 0, len(formats))

	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v := &ampfilter.Variant{
			Path:       page.Path,
			Format:     format,
			SourceHash: sourceHash,
		}

		out, err := b.Filter.Filter(page.Content, format, b.Force)
		switch {
		case err == nil:
			v.Status = ampfilter.VariantGenerated
			v.Content = out
			v.ContentHash = computeHash(out)
			if err := b.Store.Save(ctx, v); err != nil {
				return nil, fmt.Errorf("save %s: %w", path, err)
			}
		case ampfilter.ErrorCode(err) == ampfilter.EUNAVAILABLE:
			v.Status = ampfilter.VariantUnavailable
		default:
			return nil, fmt.Errorf("filter %s to %s: %w", path, format, err)
		}

		variants = append(variants, v)
	}

	return variants, nil
}

func sortVariants(variants []*ampfilter.Variant) {
	rank := make(map[ampfilter.Format]int, len(ampfilter.Formats))
	for i, f := range ampfilter.Formats {
		rank[f] = i
	}
	sort.SliceStable(variants, func(i, j int) bool {
		if variants[i].Path != variants[j].Path {
			return variants[i].Path < variants[j].Path
		}
		return rank[variants[i].Format] < rank[variants[j].Format]
	})
}
