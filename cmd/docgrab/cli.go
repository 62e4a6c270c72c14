package main

import (
	"context"
	"io"

	"github.com/fwojciec/docgrab"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	RootURL      string `arg:"" name:"root_url" help:"Page whose child pages carry the documents"`
	OutputFolder string `arg:"" name:"output_folder" help:"Folder for downloaded documents (created if missing)"`
	Combine      bool   `help:"Concatenate all documents into combined.pdf after downloading"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Collector  docgrab.LinkCollector
	Locator    docgrab.DocumentLocator
	Downloader docgrab.Downloader
	Store      docgrab.DocumentStore
	Combiner   docgrab.Combiner
	Indicator  docgrab.Indicator
	Progress   docgrab.ProgressDisplay
}

// GrabCmd downloads the document of every subpage of RootURL.
type GrabCmd struct {
	RootURL string
	Combine bool
}
