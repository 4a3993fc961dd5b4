package dto

// CreateUnitRequest entrada para create_unit.
type CreateUnitRequest struct {
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
	Code      string `json:"code"`
}

// UnitResponse salida de una unidad.
type UnitResponse struct {
	ID        int64  `json:"id_unit"`
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
	Code      string `json:"code"`
}
