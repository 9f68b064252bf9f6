package analyses

import (
	"fmt"

	"energy-optimizer/internal/analyses/recommendations"
)

// ConsumptionRequest is the submitted energy profile. Only building_type is read.
type ConsumptionRequest map[string]any

const buildingTypeField = "building_type"

// BuildingType resolves the requested category. A missing field means the
// default category; a present value that is not a string is unsupported.
func (r ConsumptionRequest) BuildingType() (string, error) {
	raw, ok := r[buildingTypeField]
	if !ok {
		return recommendations.DefaultBuildingType, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T", recommendations.ErrUnsupportedBuildingType, buildingTypeField, raw)
	}
	return value, nil
}
