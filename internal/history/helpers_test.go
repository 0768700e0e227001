package history

import "strconv"

func formatSeconds(s int64) string { return strconv.FormatInt(s, 10) }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
