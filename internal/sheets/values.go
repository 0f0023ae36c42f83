package sheets

import "net/http"

// valueRange mirrors the Sheets API values payload.
type valueRange struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values"`
}

// Values fetches all rows of the given A1 range (typically a worksheet
// name). Rows are returned as raw string cells, header row included.
func (c *Client) Values(spreadsheetID, rng string) ([][]string, error) {
	u := c.url("spreadsheets", spreadsheetID, "values", rng)
	var vr valueRange
	if err := c.doJSON(http.MethodGet, u, nil, &vr); err != nil {
		return nil, err
	}
	return vr.Values, nil
}

// Append adds one row after the last non-empty row of the range.
func (c *Client) Append(spreadsheetID, rng string, row []string) error {
	u := c.url("spreadsheets", spreadsheetID, "values", rng+":append") + "?valueInputOption=RAW"
	body := valueRange{Values: [][]string{row}}
	return c.doJSON(http.MethodPost, u, body, nil)
}
