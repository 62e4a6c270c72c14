// Package pdfcpu concatenates PDF documents using pdfcpu.
package pdfcpu

import (
	"context"
	"fmt"

	"github.com/fwojciec/docgrab"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Keep pdfcpu from writing its config dir under the user's home.
	api.DisableConfigDir()
}

// Ensure Combiner implements docgrab.Combiner at compile time.
var _ docgrab.Combiner = (*Combiner)(nil)

// Combiner merges PDF files page by page.
type Combiner struct {
	conf *model.Configuration
}

// NewCombiner creates a Combiner with relaxed validation, which tolerates
// the minor defects common in exported slide decks.
func NewCombiner() *Combiner {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Combiner{conf: conf}
}

func (c *Combiner) Combine(ctx context.Context, inFiles []string, outFile string) error {
	if len(inFiles) == 0 {
		return docgrab.Errorf(docgrab.EINVALID, "no documents to combine")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := api.MergeCreateFile(inFiles, outFile, false, c.conf); err != nil {
		return fmt.Errorf("merging %d documents: %w", len(inFiles), err)
	}
	return nil
}
