package models

import (
	"encoding/json"
	"math"
)

// RawHistoryPoint is one history entry as exposed by GET /historico.
//
// Timestamp is a calendar date-time string for period 1D and a decimal
// string of Unix epoch seconds for every other period. Valor is the
// quoted rate as a decimal string.
type RawHistoryPoint struct {
	Timestamp string `json:"timestamp" example:"1735732800"`
	Valor     string `json:"valor" example:"6.1842"`
}

// NormalizedPoint is a chart-ready history entry.
//
// Timestamp is epoch milliseconds. Valor may be NaN when the upstream
// value could not be parsed; it is encoded as null in JSON.
type NormalizedPoint struct {
	Timestamp int64   `json:"timestamp"`
	Valor     float64 `json:"valor"`
}

type normalizedPointJSON struct {
	Timestamp int64    `json:"timestamp"`
	Valor     *float64 `json:"valor"`
}

// MarshalJSON writes non-finite values as null.
func (p NormalizedPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(normalizedPointJSON{Timestamp: p.Timestamp, Valor: finiteOrNil(p.Valor)})
}

// UnmarshalJSON reads a null value back as NaN.
func (p *NormalizedPoint) UnmarshalJSON(b []byte) error {
	var aux normalizedPointJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	p.Timestamp = aux.Timestamp
	if aux.Valor == nil {
		p.Valor = math.NaN()
	} else {
		p.Valor = *aux.Valor
	}
	return nil
}

// Pair returns the point in the [epochMillis, value] form charting
// libraries consume. A non-finite value becomes nil.
func (p NormalizedPoint) Pair() [2]any {
	if v := finiteOrNil(p.Valor); v != nil {
		return [2]any{p.Timestamp, *v}
	}
	return [2]any{p.Timestamp, nil}
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
