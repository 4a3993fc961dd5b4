package entity

// Classification representa un nodo del clasificador (tabla classification).
// ParentID es nil para las clases raíz. La ausencia de ciclos la garantiza la base de datos.
type Classification struct {
	ID        int64
	ShortName string
	Name      string
	UnitID    int64
	ParentID  *int64
}

// ClassRef es la forma reducida (id, short_name) que devuelve find_children.
type ClassRef struct {
	ID        int64
	ShortName string
}
