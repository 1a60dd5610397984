package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

// utf8BOM keeps spreadsheet tools happy with non-ASCII content.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVRenderer writes the result set as byte-order-marked UTF-8 CSV, the
// same columns and formatting as the table.
type CSVRenderer struct{}

func NewCSVRenderer() *CSVRenderer { return &CSVRenderer{} }

func (r *CSVRenderer) Render(w io.Writer, rows []types.Result, opts Options) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers(opts.Names)); err != nil {
		return err
	}
	for _, res := range rows {
		if err := cw.Write(Record(res, opts.Names)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile exports rows to path, or to ExportFilename when path is "".
func WriteCSVFile(path string, rows []types.Result, opts Options) (string, error) {
	if path == "" {
		path = ExportFilename
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := NewCSVRenderer().Render(f, rows, opts); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
