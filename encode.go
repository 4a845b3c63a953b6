package tickerwatch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// This file contains code to persist the watchlist as a single JSON file, in a
// way that remains human-readable and easy to edit by hand.
//
// The file is a JSON array of uppercase ticker strings. It is read in full at
// the start of a command and rewritten wholesale after a mutation. There is no
// locking: concurrent invocations racing on the file is accepted, last writer
// wins.

const watchlistFilename = ".cli_watchlist.json"

// ErrFormat reports a watchlist file whose content is not a JSON array of
// ticker strings.
var ErrFormat = errors.New("invalid watchlist format")

// DefaultPath returns the default watchlist location in the user's home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("warning, cannot resolve home directory, using working directory instead: %v", err)
		return watchlistFilename
	}
	return filepath.Join(home, watchlistFilename)
}

// DecodeWatchlist parses a watchlist from 'r'. filename is for error messages
// only.
func DecodeWatchlist(filename string, r io.Reader) (*Watchlist, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}

	var tickers []string
	if err := json.Unmarshal(data, &tickers); err != nil {
		return nil, fmt.Errorf("%w in %q: %v", ErrFormat, filename, err)
	}
	return NewWatchlist(tickers...), nil
}

// EncodeWatchlist writes the watchlist to 'w' as an indented JSON array of
// sorted, unique, uppercase tickers.
func EncodeWatchlist(w io.Writer, watchlist *Watchlist) error {
	data, err := json.MarshalIndent(watchlist.Tickers(), "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal watchlist: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write watchlist: %w", err)
	}
	return nil
}

// LoadWatchlist reads the watchlist persisted at path. A missing file is an
// empty watchlist, not an error.
func LoadWatchlist(path string) (*Watchlist, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewWatchlist(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", path, err)
	}
	defer f.Close()
	return DecodeWatchlist(path, f)
}

// SaveWatchlist overwrites the watchlist persisted at path. The new content is
// written to a temporary file in the same directory and renamed into place, so
// a crash mid-write cannot leave a corrupted file behind.
func SaveWatchlist(path string, watchlist *Watchlist) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, watchlistFilename+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in %q: %w", dir, err)
	}

	if err := EncodeWatchlist(tmp, watchlist); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot overwrite %q: %w", path, err)
	}
	return nil
}
