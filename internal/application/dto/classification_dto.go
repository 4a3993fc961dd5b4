package dto

// CreateClassificationRequest entrada para create_class. ParentID nil crea una clase raíz.
type CreateClassificationRequest struct {
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
	UnitID    int64  `json:"id_unit"`
	ParentID  *int64 `json:"id_main_class"`
}

// ClassificationResponse salida de una clase.
type ClassificationResponse struct {
	ID        int64  `json:"id_class"`
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
	UnitID    int64  `json:"id_unit"`
	ParentID  *int64 `json:"id_main_class"`
}

// ClassChildResponse fila de find_children.
type ClassChildResponse struct {
	ID        int64  `json:"id_class"`
	ShortName string `json:"short_name"`
}

// ChangeParentRequest nuevo padre de una clase.
type ChangeParentRequest struct {
	ParentID int64 `json:"id_main_class"`
}
