package docgrab

// DocumentStore decides where documents live on disk.
type DocumentStore interface {
	// Init creates the output folder and its parents.
	Init() error

	// PathFor returns the output path for the document of pageURL.
	PathFor(pageURL string) string

	// Exists reports whether a file is already present at path.
	Exists(path string) (bool, error)

	// Documents returns the paths of every downloaded document, sorted by
	// filename. The combined output is not included.
	Documents() ([]string, error)

	// CombinedPath returns the path of the combined output.
	CombinedPath() string
}
