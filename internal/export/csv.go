package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/poseek/poseek/pkg/types"
)

// CSV import errors.
var (
	ErrHeaderMismatch = errors.New("csv header does not match active schema")
)

// CSV renders the session as the Keypoints.csv table: a header row of
// filename plus <bodypart>_x/<bodypart>_y column pairs in schema order,
// then one row per visited image in session iteration order. Absent
// points render as empty cells.
func CSV(sess *types.Session) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	schema := sess.Schema()
	if err := w.Write(csvHeader(schema)); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}

	for _, filename := range sess.Images() {
		if !sess.Visited(filename) {
			continue
		}
		st, err := sess.Store(filename)
		if err != nil {
			return nil, err
		}

		row := make([]string, 0, 1+2*len(schema.BodyParts))
		row = append(row, filename)
		for _, part := range schema.BodyParts {
			if p, ok := st.Point(part); ok {
				row = append(row, formatCoord(p.X), formatCoord(p.Y))
			} else {
				row = append(row, "", "")
			}
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing csv row for %s: %w", filename, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteCSV atomically writes the CSV export to path.
func WriteCSV(path string, sess *types.Session) error {
	data, err := CSV(sess)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// ReadCSV loads a Keypoints.csv file into the session's stores. The header
// must match the session schema's column layout. Rows for filenames the
// session does not know, and cells that are blank or unparseable, are
// skipped. Returns the number of rows imported.
func ReadCSV(path string, sess *types.Session) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening csv %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("reading csv header: %w", err)
	}
	schema := sess.Schema()
	if !headerMatches(header, schema) {
		return 0, ErrHeaderMismatch
	}

	imported := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("reading csv row: %w", err)
		}
		if len(row) == 0 || row[0] == "" {
			continue
		}

		st, err := sess.Store(row[0])
		if err != nil {
			// Rows for images outside the session are skipped.
			continue
		}
		for j, part := range schema.BodyParts {
			xCol, yCol := 1+2*j, 2+2*j
			if yCol >= len(row) || row[xCol] == "" || row[yCol] == "" {
				continue
			}
			x, errX := strconv.ParseFloat(row[xCol], 64)
			y, errY := strconv.ParseFloat(row[yCol], 64)
			if errX != nil || errY != nil {
				continue
			}
			if err := st.SetPoint(part, x, y); err != nil {
				return imported, err
			}
		}
		imported++
	}
	return imported, nil
}

// csvHeader returns the header row for a schema: filename followed by
// <bodypart>_x, <bodypart>_y pairs in schema order.
func csvHeader(schema types.Schema) []string {
	header := make([]string, 0, 1+2*len(schema.BodyParts))
	header = append(header, "filename")
	for _, part := range schema.BodyParts {
		header = append(header, part+"_x", part+"_y")
	}
	return header
}

func headerMatches(header []string, schema types.Schema) bool {
	want := csvHeader(schema)
	if len(header) != len(want) {
		return false
	}
	for i := range want {
		if header[i] != want[i] {
			return false
		}
	}
	return true
}

// formatCoord renders a coordinate without trailing zeros, so integral
// values stay integral in the CSV.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
