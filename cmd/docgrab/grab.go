package main

import (
	"fmt"
)

// Run executes the grab command. Navigation, setup and merge failures end
// the run; a page without a document or a failed download only skips that
// page.
func (c *GrabCmd) Run(deps *Dependencies) error {
	if err := deps.Store.Init(); err != nil {
		return fmt.Errorf("creating output folder: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Loading root: %s\n", c.RootURL)
	subpages, err := deps.Collector.Collect(deps.Ctx, c.RootURL)
	if err != nil {
		return fmt.Errorf("loading root: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Found %d subpages\n", len(subpages))

	for _, page := range subpages {
		if err := c.grab(deps, page); err != nil {
			return err
		}
	}

	if c.Combine {
		if err := c.combine(deps); err != nil {
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, "Done")
	return nil
}

// grab handles one subpage. Only errors that must end the run are returned.
func (c *GrabCmd) grab(deps *Dependencies, page string) error {
	path := deps.Store.PathFor(page)
	exists, err := deps.Store.Exists(path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if exists {
		fmt.Fprintf(deps.Stdout, "Skipping existing file: %s\n", path)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "  Visiting: %s\n", page)
	stop := deps.Indicator.Start("waiting for network requests")
	docURL, err := deps.Locator.Locate(deps.Ctx, page)
	stop()
	if err != nil {
		return fmt.Errorf("visiting %s: %w", page, err)
	}
	if docURL == "" {
		fmt.Fprintln(deps.Stdout, "  No document detected in network requests")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "  Document detected: %s\n", docURL)
	fmt.Fprintf(deps.Stdout, "  Downloading → %s\n", path)
	err = deps.Downloader.Download(deps.Ctx, docURL, path, deps.Progress.Update)
	deps.Progress.Finish()
	if err != nil {
		if deps.Ctx.Err() != nil {
			return deps.Ctx.Err()
		}
		fmt.Fprintf(deps.Stderr, "  Download error: %v\n", err)
	}
	return nil
}

func (c *GrabCmd) combine(deps *Dependencies) error {
	docs, err := deps.Store.Documents()
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}
	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents to combine")
		return nil
	}

	out := deps.Store.CombinedPath()
	if err := deps.Combiner.Combine(deps.Ctx, docs, out); err != nil {
		return fmt.Errorf("combining documents: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Combined document saved as: %s\n", out)
	return nil
}
