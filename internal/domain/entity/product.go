package entity

// Product representa un producto; ClassID debe apuntar a una clase terminal.
type Product struct {
	ID        int64
	ShortName string
	Name      string
	ClassID   int64
}
