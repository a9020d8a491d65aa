package lz4x

import "github.com/go-faster/errors"

// Sentinel errors the CLI (and any other caller) can compare against with
// errors.Is. The core Compress/Append path never returns an error; these
// are only ever produced by the dictionary loader and the CLI's own
// argument/file handling.
var (
	// ErrBadDictionary means a dictionary file could not be read.
	ErrBadDictionary = errors.New("lz4x: could not read dictionary")
	// ErrOutputExists means the output path already exists and -f was
	// not given.
	ErrOutputExists = errors.New("lz4x: output already exists")
	// ErrUnknownFlag means the CLI was given an option it does not
	// recognize.
	ErrUnknownFlag = errors.New("lz4x: unknown option")
)
