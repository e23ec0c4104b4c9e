package entity

// ImportStats summarizes one CSV contact import.
// TotalRows = Imported + Duplicates + InvalidPhones + Skipped always holds.
type ImportStats struct {
	TotalRows     int `json:"total_rows"`
	Imported      int `json:"imported"`
	Duplicates    int `json:"duplicates"`
	InvalidPhones int `json:"invalid_phones"`
	Skipped       int `json:"skipped"`
}
