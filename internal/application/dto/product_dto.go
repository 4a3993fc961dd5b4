package dto

// CreateProductRequest entrada para create_product.
type CreateProductRequest struct {
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
	ClassID   int64  `json:"id_class"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64  `json:"id_product"`
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
	ClassID   int64  `json:"id_class"`
}

// ChangeClassRequest nueva clase de un producto.
type ChangeClassRequest struct {
	ClassID int64 `json:"id_class"`
}
