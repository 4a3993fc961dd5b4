// Command clasificador es el cliente de operador: sin subcomando abre la interfaz
// de terminal; con subcomando ejecuta la misma operación en modo script.
package main

import "os"

func main() {
	os.Exit(Execute())
}
