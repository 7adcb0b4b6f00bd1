package http

import (
	"errors"

	"rockguard-srv/internal/alert"
	pkgErrors "rockguard-srv/pkg/errors"
)

var (
	errMessageRequired      = pkgErrors.NewHTTPError(400, "Alert message is required")
	errInvalidAlertType     = pkgErrors.NewHTTPError(400, "Invalid alert type")
	errInvalidPriority      = pkgErrors.NewHTTPError(400, "Invalid priority")
	errNoRecipients         = pkgErrors.NewHTTPError(404, "No recipients match the targeting filters")
	errDirectoryUnavailable = pkgErrors.NewHTTPError(503, "Recipient directory is unavailable")
	errTransportUnavailable = pkgErrors.NewHTTPError(502, "Delivery transport is unavailable")
	errBroadcastLogFailed   = pkgErrors.NewHTTPError(503, "Broadcast log is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, alert.ErrMessageRequired):
		return errMessageRequired
	case errors.Is(err, alert.ErrInvalidAlertType):
		return errInvalidAlertType
	case errors.Is(err, alert.ErrInvalidPriority):
		return errInvalidPriority
	case errors.Is(err, alert.ErrNoRecipients):
		return errNoRecipients
	case errors.Is(err, alert.ErrDirectoryUnavailable):
		return errDirectoryUnavailable
	case errors.Is(err, alert.ErrTransportUnavailable):
		return errTransportUnavailable
	case errors.Is(err, alert.ErrBroadcastLogFailed):
		return errBroadcastLogFailed
	default:
		panic(err)
	}
}
