package docgrab

// Indicator shows that a long wait is in progress.
type Indicator interface {
	// Start displays msg until stop is called.
	Start(msg string) (stop func())
}

// ProgressDisplay renders download progress for one file at a time.
type ProgressDisplay interface {
	// Update redraws the display for the current file.
	Update(p DownloadProgress)

	// Finish ends the display of the current file.
	Finish()
}
