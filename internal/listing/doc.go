// Package listing defines the internship dataset as exported to JSON.
//
// Every optional field is modelled so that "absent" stays distinguishable
// from zero: numbers are pointers and timestamps are kept as the raw text the
// exporter wrote, parsed on demand with ParseTime. Records must carry a
// title, company and url; Dataset.Sanitize removes the ones that do not.
package listing
