// Package docgrab downloads the documents embedded in the child pages of a
// course-style website. It loads a root page in a headless browser,
// discovers the child pages linked from it, sniffs each child page's
// network traffic for a document request, downloads every document it
// finds, and can optionally concatenate the results into a single PDF.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, pdfcpu/).
package docgrab
