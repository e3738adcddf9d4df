package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TableOptions holds options for loading whitespace-delimited tables.
type TableOptions struct {
	XColumn      int     // Column index for x values (default: 0)
	YColumn      int     // Column index for y values (default: 1)
	SigmaColumn  int     // Column index for y uncertainties (negative: use DefaultSigma)
	DefaultSigma float64 // Uncertainty assigned when no sigma column is read (default: 1)
	SkipRows     int     // Number of header lines to skip at the start
}

// DefaultTableOptions returns default options for table loading.
func DefaultTableOptions() *TableOptions {
	return &TableOptions{
		XColumn:      0,
		YColumn:      1,
		SigmaColumn:  -1,
		DefaultSigma: 1,
	}
}

// LoadTable loads a dataset from a whitespace-delimited text file.
func LoadTable(filename string, opts *TableOptions) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ds, err := LoadTableFromReader(file, opts)
	if err != nil {
		return nil, err
	}
	ds.Name = filepath.Base(filename)

	return ds, nil
}

// LoadTableFromReader loads a dataset from an io.Reader holding
// whitespace-delimited numeric columns, one record per line. Blank lines and
// records whose selected columns do not parse as numbers are skipped, the
// same way malformed values are skipped when loading CSV data.
func LoadTableFromReader(r io.Reader, opts *TableOptions) (*Dataset, error) {
	if opts == nil {
		opts = DefaultTableOptions()
	}
	if opts.SigmaColumn < 0 && opts.DefaultSigma <= 0 {
		return nil, fmt.Errorf("default sigma must be positive, got %g", opts.DefaultSigma)
	}

	scanner := bufio.NewScanner(r)
	skipped := 0
	var obs []Observation

	for scanner.Scan() {
		if skipped < opts.SkipRows {
			skipped++
			continue
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		x, ok := parseField(fields, opts.XColumn)
		if !ok {
			continue
		}
		y, ok := parseField(fields, opts.YColumn)
		if !ok {
			continue
		}

		sigma := opts.DefaultSigma
		if opts.SigmaColumn >= 0 {
			s, ok := parseField(fields, opts.SigmaColumn)
			if !ok || s <= 0 {
				continue
			}
			sigma = s
		}

		obs = append(obs, Observation{X: x, Y: y, SigmaY: sigma})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(obs) == 0 {
		return nil, errors.New("no valid data found in table")
	}

	return &Dataset{Obs: obs}, nil
}

// LoadColumn loads a single numeric column from a whitespace-delimited text
// file as a plain slice, skipping header lines and unparsable records.
func LoadColumn(filename string, column, skipRows int) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadColumnFromReader(file, column, skipRows)
}

// LoadColumnFromReader loads a single numeric column from an io.Reader.
func LoadColumnFromReader(r io.Reader, column, skipRows int) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	skipped := 0
	var values []float64

	for scanner.Scan() {
		if skipped < skipRows {
			skipped++
			continue
		}

		fields := strings.Fields(scanner.Text())
		if v, ok := parseField(fields, column); ok {
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in column")
	}

	return values, nil
}

// SaveTable saves a dataset to a whitespace-delimited text file with a
// single header line. Loading the file back with SkipRows=1 round-trips the
// data.
func SaveTable(ds *Dataset, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	if _, err := writer.WriteString("x y sigma_y\n"); err != nil {
		return err
	}
	for _, o := range ds.Obs {
		line := strconv.FormatFloat(o.X, 'g', -1, 64) + " " +
			strconv.FormatFloat(o.Y, 'g', -1, 64) + " " +
			strconv.FormatFloat(o.SigmaY, 'g', -1, 64) + "\n"
		if _, err := writer.WriteString(line); err != nil {
			return err
		}
	}

	return nil
}

// parseField parses the column-th field of a record, reporting whether the
// record has such a field and it is numeric.
func parseField(fields []string, column int) (float64, bool) {
	if column < 0 || column >= len(fields) {
		return 0, false
	}
	s := strings.TrimSpace(fields[column])
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
