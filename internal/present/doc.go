// Package present renders width-aware terminal banners for the configuration
// wizard: section labels, highlighted blocks, and side-by-side value
// comparisons. A Printer carries an explicit writer and column width so tests
// never depend on a real terminal.
package present
