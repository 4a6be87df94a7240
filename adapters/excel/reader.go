package excel

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pcoslens/domain/core"
	"pcoslens/domain/dataset"
	"pcoslens/internal"
	"pcoslens/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader loads a dataset from a CSV or Excel file. Header names and cell
// text are kept verbatim; interpretation is left to the analysis.
type DataReader struct {
	filePath string
	fileType string
	config   ReaderConfig
	logger   *internal.Logger
}

// NewDataReader creates a reader that picks the format from the file extension:
// .xlsx is read as a workbook, anything else as comma-separated text.
func NewDataReader(filePath string) *DataReader {
	return NewDataReaderWithConfig(filePath, DefaultReaderConfig(), internal.DefaultLogger)
}

// NewDataReaderWithConfig creates a reader with explicit configuration
func NewDataReaderWithConfig(filePath string, config ReaderConfig, logger *internal.Logger) *DataReader {
	fileType := fileTypeCSV
	if strings.EqualFold(filepath.Ext(filePath), ".xlsx") {
		fileType = fileTypeXLSX
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{filePath: filePath, fileType: fileType, config: config, logger: logger}
}

// ReadDataset reads the whole file into memory. It fails with a DATA_LOAD_ERROR
// when the file cannot be opened or parsed, or when it has no data rows.
func (r *DataReader) ReadDataset() (*dataset.Dataset, error) {
	r.logger.Debug("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case fileTypeXLSX:
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.DataLoad(fmt.Sprintf("%s has no data rows", r.filePath), core.ErrEmptyDataset)
	}

	return r.processRows(rows), nil
}

// readCSVRows reads every record of a comma-separated file
func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.DataLoad(fmt.Sprintf("failed to open %s", r.filePath), err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.DataLoad(fmt.Sprintf("failed to read %s", r.filePath), err)
	}
	r.logger.Debug("[DataReader] CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return rows, nil
}

// readExcelRows reads the configured sheet, or the first one, with raw cell values
func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.DataLoad(fmt.Sprintf("failed to open %s", r.filePath), err)
	}
	defer f.Close()

	sheet := r.config.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.DataLoad(fmt.Sprintf("%s has no worksheets", r.filePath), core.ErrEmptyDataset)
		}
		sheet = sheets[0]
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.DataLoad(fmt.Sprintf("failed to read sheet %q of %s", sheet, r.filePath), err)
	}
	r.logger.Debug("[DataReader] Sheet %s read in %.2fms (%d rows)", sheet, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	// blank worksheet rows carry no cells; text files never produce them
	kept := rows[:0]
	for _, row := range rows {
		if len(row) > 0 {
			kept = append(kept, row)
		}
	}
	return kept, nil
}

// processRows maps each data row onto the header by position. Cells past the
// header are dropped; a short row gets "" for its trailing columns, so every
// record carries every header.
func (r *DataReader) processRows(rows [][]string) *dataset.Dataset {
	headers := append([]string(nil), rows[0]...)

	records := make([]dataset.Record, 0, len(rows)-1)
	short := 0
	for _, row := range rows[1:] {
		record := make(dataset.Record, len(headers))
		for j, h := range headers {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			record[h] = cell
		}
		if len(row) < len(headers) {
			short++
		}
		records = append(records, record)
	}

	// xlsx rows routinely end early because trailing blank cells are not stored
	if short > 0 {
		r.logger.Debug("[DataReader] %d rows of %s are shorter than the header; trailing cells read as empty", short, r.filePath)
	}
	r.logger.Info("[DataReader] %s file processed (%d columns, %d rows)", strings.ToUpper(r.fileType), len(headers), len(records))

	return &dataset.Dataset{
		Source:  r.filePath,
		Headers: headers,
		Rows:    records,
	}
}
