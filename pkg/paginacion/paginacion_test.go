package paginacion

import "testing"

func TestParsear_Defaults(t *testing.T) {
	casos := []struct {
		nombre     string
		pagina     string
		cantPorPag string
		quieroPag  int
		quieroCant int
	}{
		{"vacíos", "", "", 1, 5},
		{"no numéricos", "abc", "xyz", 1, 5},
		{"cero", "0", "0", 1, 5},
		{"negativos", "-3", "-1", 1, 5},
		{"válidos", "2", "10", 2, 10},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			p := Parsear(c.pagina, c.cantPorPag)
			if p.Pagina != c.quieroPag || p.CantPorPag != c.quieroCant {
				t.Errorf("Parsear(%q, %q) = {%d %d}, se esperaba {%d %d}",
					c.pagina, c.cantPorPag, p.Pagina, p.CantPorPag, c.quieroPag, c.quieroCant)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := Parsear("3", "5")
	if p.Offset() != 10 {
		t.Errorf("offset de página 3 con 5 por página esperado 10, llegó %d", p.Offset())
	}
}

func TestTotalPaginas(t *testing.T) {
	casos := []struct {
		total  int64
		cant   string
		quiero int
	}{
		{0, "5", 0},
		{1, "5", 1},
		{5, "5", 1},
		{6, "5", 2},
		{11, "5", 3},
	}
	for _, c := range casos {
		p := Parsear("1", c.cant)
		if got := p.TotalPaginas(c.total); got != c.quiero {
			t.Errorf("TotalPaginas(%d) con %s por página = %d, se esperaba %d", c.total, c.cant, got, c.quiero)
		}
	}
}
