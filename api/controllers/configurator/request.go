package configurator

type stepRequest struct {
	Attribute string `json:"attribute" validate:"required"`
}

// Length is a pointer so an absent key is rejected while zero passes through
// to the grid snap, which clamps it to the minimum.
type lengthRequest struct {
	Length *float64 `json:"length" validate:"required"`
}
