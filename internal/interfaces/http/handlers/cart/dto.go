package cart

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}
