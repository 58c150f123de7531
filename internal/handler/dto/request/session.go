package request

// DisplayID and Query may legitimately be empty (clearing the field), so
// none of these carry a required binding unless absence is a client bug.

type UpdateDisplayIDRequest struct {
	DisplayID string `json:"displayId"`
}

type UpdateRememberRequest struct {
	Remember *bool `json:"remember" binding:"required"`
}

type UpdateSelectionRequest struct {
	ItemID string `json:"itemId"`
}

// UpdateQuantityRequest applies either a relative step (Delta) or an
// absolute value (Quantity); exactly one must be present. Both paths clamp
// to the valid range instead of rejecting.
type UpdateQuantityRequest struct {
	Delta    *int `json:"delta"`
	Quantity *int `json:"quantity"`
}

func (r UpdateQuantityRequest) Valid() bool {
	return (r.Delta != nil) != (r.Quantity != nil)
}

type UpdateQueryRequest struct {
	Query string `json:"query"`
}
