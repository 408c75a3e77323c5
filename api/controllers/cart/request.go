package cart

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// Delta is a pointer so an absent key is rejected while an explicit zero is
// accepted as a no-op adjustment.
type updateItemRequest struct {
	Delta *int `json:"delta" validate:"required"`
}
