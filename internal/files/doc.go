// Package files locates the input files of a reporting run and manages
// the files it writes.
//
// Discovery finds the current vendor exports, the historical extracts and the
// reference tables. The current GSD export is recognised by its UUID-style
// name and must be unique unless Layout.LatestGSD is set; the current GFK
// export has a fixed name. Historical extracts are
// matched by prefix and returned in name order.
//
// Manager covers the output side: backups of the report workbook before it
// is rewritten.
//
// Example usage:
//
//	discovery := files.NewDiscovery("/data/hw")
//	inputs, err := discovery.Discover(layout)
//	if errors.Is(err, files.ErrNotFound) {
//	    // a required input is missing
//	}
package files
