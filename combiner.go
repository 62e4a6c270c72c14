package docgrab

import "context"

// Combiner concatenates documents into one.
type Combiner interface {
	// Combine appends inFiles in order into outFile, replacing it.
	Combine(ctx context.Context, inFiles []string, outFile string) error
}
