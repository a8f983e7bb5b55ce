// Package feed retrieves the internships dataset.
//
// # Sources
//
// A source is either an http:// or https:// URL or a filesystem path. A
// file:// prefix is stripped. A blank source falls back to DefaultSource,
// the relative path the exporter writes next to the listing page:
//
//	client, err := feed.NewClient("https://example.org/data/internships.json",
//		feed.WithTimeout(10*time.Second),
//		feed.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	ds, err := client.FetchDataset(ctx)
//
// # Failure Model
//
// FetchDataset makes exactly one attempt. Transport errors, non-2xx
// responses, read errors and malformed JSON are all reported as a single
// failure class: the returned error wraps ErrLoadFailed and callers test it
// with errors.Is. Nothing is retried and nothing is polled.
//
// Records missing a title, company or url are dropped after decoding and
// logged at warn level; Dataset.Skipped counts them. The document's
// totalInternships value is passed through untouched.
package feed
