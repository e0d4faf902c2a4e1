package models

// Sheets append 응답 (Append confirmation)
type AppendConfirmation struct {
	SpreadsheetID  string `json:"spreadsheet_id" example:"1AbCdEf..."`
	TableRange     string `json:"table_range,omitempty" example:"Sheet1!A1:D12"`
	UpdatedRange   string `json:"updated_range" example:"Sheet1!A13:D13"`
	UpdatedRows    int64  `json:"updated_rows" example:"1"`
	UpdatedColumns int64  `json:"updated_columns" example:"4"`
	UpdatedCells   int64  `json:"updated_cells" example:"4"`
}
