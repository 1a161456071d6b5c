package annotate

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// StdinName designates standard input in a list of file names.
const StdinName = "-"

// OpenInputs opens every named file, in order. StdinName, or an empty list, stands for stdin.
// Every file is opened before anything is read so that a missing file fails before any output.
// The returned function closes the opened files.
func OpenInputs(names []string, stdin io.Reader) ([]io.Reader, func() error, error) {
	if len(names) == 0 {
		return []io.Reader{stdin}, func() error { return nil }, nil
	}

	readers := make([]io.Reader, 0, len(names))
	files := make([]*os.File, 0, len(names))
	closeAll := func() error {
		var first error
		for _, f := range files {
			err := f.Close()
			if err != nil && first == nil {
				first = errors.Wrapf(err, "unable to close %s", f.Name())
			}
		}

		return first
	}

	for _, name := range names {
		if name == StdinName {
			readers = append(readers, stdin)

			continue
		}
		f, err := os.Open(name)
		if err != nil {
			_ = closeAll()

			return nil, nil, errors.Wrap(err, "unable to open input")
		}
		files = append(files, f)
		readers = append(readers, f)
	}

	return readers, closeAll, nil
}
