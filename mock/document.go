package mock

import (
	"context"

	"github.com/fwojciec/docgrab"
)

// Compile-time interface verification.
var (
	_ docgrab.Downloader      = (*Downloader)(nil)
	_ docgrab.DocumentStore   = (*DocumentStore)(nil)
	_ docgrab.Combiner        = (*Combiner)(nil)
	_ docgrab.Indicator       = (*Indicator)(nil)
	_ docgrab.ProgressDisplay = (*ProgressDisplay)(nil)
)

// Downloader is a mock implementation of docgrab.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url, path string, progress docgrab.DownloadProgressFunc) error
}

func (d *Downloader) Download(ctx context.Context, url, path string, progress docgrab.DownloadProgressFunc) error {
	return d.DownloadFn(ctx, url, path, progress)
}

// DocumentStore is a mock implementation of docgrab.DocumentStore.
type DocumentStore struct {
	InitFn         func() error
	PathForFn      func(pageURL string) string
	ExistsFn       func(path string) (bool, error)
	DocumentsFn    func() ([]string, error)
	CombinedPathFn func() string
}

func (s *DocumentStore) Init() error {
	return s.InitFn()
}

func (s *DocumentStore) PathFor(pageURL string) string {
	return s.PathForFn(pageURL)
}

func (s *DocumentStore) Exists(path string) (bool, error) {
	return s.ExistsFn(path)
}

func (s *DocumentStore) Documents() ([]string, error) {
	return s.DocumentsFn()
}

func (s *DocumentStore) CombinedPath() string {
	return s.CombinedPathFn()
}

// Combiner is a mock implementation of docgrab.Combiner.
type Combiner struct {
	CombineFn func(ctx context.Context, inFiles []string, outFile string) error
}

func (c *Combiner) Combine(ctx context.Context, inFiles []string, outFile string) error {
	return c.CombineFn(ctx, inFiles, outFile)
}

// Indicator is a mock implementation of docgrab.Indicator.
// A nil StartFn returns a no-op stop function.
type Indicator struct {
	StartFn func(msg string) func()
}

func (i *Indicator) Start(msg string) func() {
	if i.StartFn != nil {
		return i.StartFn(msg)
	}
	return func() {}
}

// ProgressDisplay is a mock implementation of docgrab.ProgressDisplay.
// Nil functions are no-ops.
type ProgressDisplay struct {
	UpdateFn func(p docgrab.DownloadProgress)
	FinishFn func()
}

func (d *ProgressDisplay) Update(p docgrab.DownloadProgress) {
	if d.UpdateFn != nil {
		d.UpdateFn(p)
	}
}

func (d *ProgressDisplay) Finish() {
	if d.FinishFn != nil {
		d.FinishFn()
	}
}
