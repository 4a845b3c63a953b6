// Package tickerwatch provides the core types and functions to maintain a
// personal stock watchlist and work with price quotes. It is designed to be
// local-first: the watchlist lives in a single human-readable JSON file that
// the user fully controls.
//
// The core functionalities include:
//   - Watchlist Management: A normalized (uppercase), de-duplicated, sorted
//     set of ticker symbols with add and remove operations.
//   - Data Persistence: Reading and wholesale rewriting of the watchlist
//     file, with a safe temp-file-and-rename overwrite.
//   - Quote Aggregation: Count, min, max and average statistics over the
//     prices of one fetch operation.
//   - CSV Export: A spreadsheet-friendly export of quotes with a single
//     export timestamp.
//
// This package serves as the foundational logic for the `tickw` command-line
// tool. Remote quote retrieval lives in the yahoo package.
package tickerwatch
