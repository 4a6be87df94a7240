package excel

// file types understood by DataReader
const (
	fileTypeCSV  = "csv"
	fileTypeXLSX = "xlsx"
)
