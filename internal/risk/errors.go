package risk

import "errors"

var (
	ErrLocationRequired    = errors.New("sensor reading location is required")
	ErrHistoryUnavailable  = errors.New("prediction history is unavailable")
	ErrQueryRequired       = errors.New("query is required")
	ErrAnalysisUnavailable = errors.New("analysis is unavailable")
)
