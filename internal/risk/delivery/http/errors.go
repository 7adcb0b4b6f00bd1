package http

import (
	"errors"

	"rockguard-srv/internal/risk"
	pkgErrors "rockguard-srv/pkg/errors"
)

var (
	errLocationRequired    = pkgErrors.NewHTTPError(400, "Sensor reading location is required")
	errHistoryUnavailable  = pkgErrors.NewHTTPError(503, "Prediction history is unavailable")
	errQueryRequired       = pkgErrors.NewHTTPError(400, "Query is required")
	errAnalysisUnavailable = pkgErrors.NewHTTPError(503, "Analysis is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, risk.ErrLocationRequired):
		return errLocationRequired
	case errors.Is(err, risk.ErrHistoryUnavailable):
		return errHistoryUnavailable
	case errors.Is(err, risk.ErrQueryRequired):
		return errQueryRequired
	case errors.Is(err, risk.ErrAnalysisUnavailable):
		return errAnalysisUnavailable
	default:
		panic(err)
	}
}
