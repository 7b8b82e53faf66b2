package paginacion

import "strconv"

// Valores por defecto cuando los parámetros faltan o son inválidos.
const (
	PaginaPorDefecto     = 1
	CantPorPagPorDefecto = 5
)

// Parametros es el resultado de parsear los parámetros de paginación
// de la query string.
type Parametros struct {
	Pagina     int
	CantPorPag int
}

// Parsear toma los valores crudos de `pagina` y `cantPorPag` y devuelve
// parámetros válidos: cualquier valor no numérico o menor o igual a cero
// se reemplaza por el valor por defecto (1 y 5 respectivamente).
func Parsear(pagina, cantPorPag string) Parametros {
	p := Parametros{
		Pagina:     PaginaPorDefecto,
		CantPorPag: CantPorPagPorDefecto,
	}
	if n, err := strconv.Atoi(pagina); err == nil && n > 0 {
		p.Pagina = n
	}
	if n, err := strconv.Atoi(cantPorPag); err == nil && n > 0 {
		p.CantPorPag = n
	}
	return p
}

// Offset devuelve el desplazamiento para la consulta paginada.
// La página 1 es la primera: página 1 → elementos 1 al 5, página 2 → 6 al 10.
func (p Parametros) Offset() int {
	return (p.Pagina - 1) * p.CantPorPag
}

// TotalPaginas calcula la cantidad de páginas necesarias para el total dado.
func (p Parametros) TotalPaginas(totalElementos int64) int {
	paginas := int(totalElementos) / p.CantPorPag
	if int(totalElementos)%p.CantPorPag > 0 {
		paginas++
	}
	return paginas
}
