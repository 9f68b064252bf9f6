package recommendations

import "errors"

// Supported building types.
const (
	Residential = "residential"
	Commercial  = "commercial"
)

// DefaultBuildingType is used when a request does not name a building type.
const DefaultBuildingType = Residential

// SampleSize is the number of recommendations returned per analysis.
const SampleSize = 2

var (
	ErrUnsupportedBuildingType = errors.New("unsupported building type")
	ErrInvalidCatalog          = errors.New("invalid recommendation catalog")
)

// Result is the outcome of an analysis for a single building.
type Result struct {
	BuildingType    string   `json:"building_type"`
	Recommendations []string `json:"recommendations"`
}
