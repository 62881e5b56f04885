package common

import (
	"io"
	"os"

	"github.com/nyhm/CPP09/lib/constants"

	"github.com/gravitational/trace"
	"gopkg.in/alecthomas/kingpin.v2"
)

// GetReader returns the reader for the provided file or stdin if no filename
// was provided
func GetReader(filename string) (io.ReadCloser, error) {
	if filename == "" || filename == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return f, nil
}

// Format is the CLI parser for output format flag
func Format(s kingpin.Settings) *constants.Format {
	var f constants.Format
	s.SetValue(&f)
	return &f
}
