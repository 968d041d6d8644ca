package sqlkit

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadDelimited reads a separator-delimited text file whose first line is a
// column header and whose remaining non-empty lines are value rows. It is
// used for test fixtures and the CLI import command; no quoting or escaping
// of the separator is supported.
func ReadDelimited(path string, sep rune) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open %s", path)
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, string(sep))
		if header == nil {
			header = fields
			continue
		}

		rows = append(rows, fields)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if header == nil {
		return nil, nil, errors.Errorf("file %s has no header line", path)
	}

	return header, rows, nil
}
