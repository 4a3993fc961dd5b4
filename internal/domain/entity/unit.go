package entity

// Unit representa una unidad de medida.
type Unit struct {
	ID        int64
	ShortName string
	Name      string
	Code      string
}
