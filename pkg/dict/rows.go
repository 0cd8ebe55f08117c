package dict

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// rowReader reads the key and metadata columns of a dictionary CSV. Column
// positions are resolved once from the header.
type rowReader struct {
	csv  *csv.Reader
	key  int
	meta map[string]int
}

// newRowReader wraps src according to the format, transcoding declared
// non-UTF-8 encodings, and consumes the header when there is one.
func newRowReader(src io.Reader, format FormatSpec, cols []MetadataColumn) (*rowReader, error) {
	if enc := format.Encoding; !isUTF8(enc) {
		e, err := htmlindex.Get(enc)
		if err != nil {
			return nil, fmt.Errorf("unsupported encoding %q: %w", enc, err)
		}
		src = transform.NewReader(src, e.NewDecoder())
	}

	r := csv.NewReader(src)
	if format.Delimiter != "" {
		r.Comma = []rune(format.Delimiter)[0]
	}
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	rr := &rowReader{csv: r, meta: make(map[string]int)}

	if !format.HasHeader {
		return rr, nil
	}
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if format.KeyColumn != "" {
		if rr.key = indexOf(header, format.KeyColumn); rr.key < 0 {
			return nil, fmt.Errorf("key column %q not found in header %v", format.KeyColumn, header)
		}
	}
	for _, mc := range cols {
		if i := indexOf(header, mc.Column); i >= 0 {
			rr.meta[mc.Name] = i
		}
	}
	return rr, nil
}

// next returns the trimmed key and metadata of the next row. Rows too short
// to hold the key come back with an empty key. At the end it returns io.EOF.
func (rr *rowReader) next() (string, map[string]string, error) {
	record, err := rr.csv.Read()
	if err != nil {
		if err != io.EOF {
			err = fmt.Errorf("read row: %w", err)
		}
		return "", nil, err
	}
	if rr.key >= len(record) {
		return "", nil, nil
	}
	var meta map[string]string
	if len(rr.meta) > 0 {
		meta = make(map[string]string, len(rr.meta))
		for name, i := range rr.meta {
			if i < len(record) {
				meta[name] = strings.TrimSpace(record[i])
			}
		}
	}
	return strings.TrimSpace(record[rr.key]), meta, nil
}

func indexOf(header []string, col string) int {
	for i, h := range header {
		if h == col {
			return i
		}
	}
	return -1
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}
