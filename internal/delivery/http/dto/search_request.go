package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexInt accepts a JSON number or a numeric string. The search form sends
// the recency window both ways depending on the client.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*f = FlexInt(v)
		return nil
	}

	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexInt(v)
	return nil
}

type SearchRequest struct {
	JobTitle      string  `json:"jobTitle"`
	Location      string  `json:"location"`
	TimeRangeDays FlexInt `json:"timeRangeDays"`
}

type PageRequest struct {
	Page int `json:"page"`
}

type SortRequest struct {
	SortKey string `json:"sortKey"`
}
