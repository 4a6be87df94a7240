package excel

// ReaderConfig holds configuration for reading a dataset file
type ReaderConfig struct {
	// SheetName is the worksheet read from .xlsx files; empty selects the first sheet.
	SheetName string `json:"sheet_name"`
}

// DefaultReaderConfig returns sensible defaults for dataset reading
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{}
}
