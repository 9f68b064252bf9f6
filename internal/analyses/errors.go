package analyses

import "errors"

var (
	ErrNoData = errors.New("no data provided")
)

// Client-facing messages for the analyze route.
const (
	MessageNoData                  = "No data provided"
	MessageUnsupportedBuildingType = "Unsupported building type"
)

// Rejection reasons recorded in metrics.
const (
	reasonNoData                  = "no_data"
	reasonUnsupportedBuildingType = "unsupported_building_type"
	reasonCanceled                = "canceled"
)
