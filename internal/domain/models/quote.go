package models

import "time"

// Quote is the current exchange rate between two currencies.
//
// Fields:
//   - From/To: the currency pair (e.g. USD -> BRL).
//   - Bid: the rate exactly as returned upstream (kept as text for /cotacao).
//   - Rate: Bid parsed as float64.
//   - Source: upstream that produced the quote (e.g. "awesomeapi").
//   - FetchedAt: when the quote was obtained.
type Quote struct {
	From      Currency  `json:"de" example:"USD"`
	To        Currency  `json:"para" example:"BRL"`
	Bid       string    `json:"bid" example:"5.4321"`
	Rate      float64   `json:"rate" example:"5.4321"`
	Source    string    `json:"source" example:"awesomeapi"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Conversion is the result of converting Amount of From into To.
type Conversion struct {
	From   Currency `json:"de" example:"USD"`
	To     Currency `json:"para" example:"BRL"`
	Amount float64  `json:"valor" example:"100"`
	Rate   float64  `json:"cotacao" example:"5.4321"`
	Result float64  `json:"resultado" example:"543.21"`
}
