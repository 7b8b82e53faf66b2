package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/pkg/apperrors"
	"github.com/matiashmuller/ep-api-tp/pkg/response"
)

func TestListarAlumnos_SobreDePaginacion(t *testing.T) {
	svc := &mockAlumnoService{
		listResult: []*dto.AlumnoDetalle{
			{ID: 6, DNI: 40000006, Nombre: "Ana", Apellido: "García"},
			{ID: 7, DNI: 40000007, Nombre: "Juan", Apellido: "López"},
		},
		listTotal: 7,
	}
	r := rutasAlumno(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/alum?pagina=2&cantPorPag=5", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status esperado 200, llegó %d", w.Code)
	}

	var sobre response.Pagina
	if err := json.Unmarshal(w.Body.Bytes(), &sobre); err != nil {
		t.Fatalf("respuesta no decodificable: %v", err)
	}
	if sobre.TotalElementos != 7 {
		t.Errorf("totalElementos esperado 7, llegó %d", sobre.TotalElementos)
	}
	if sobre.TotalPaginas != 2 {
		t.Errorf("totalPaginas esperado 2, llegó %d", sobre.TotalPaginas)
	}
	if sobre.PaginaNro != 2 {
		t.Errorf("paginaNro esperado 2, llegó %d", sobre.PaginaNro)
	}
}

func TestObtenerAlumno_NoEncontrado(t *testing.T) {
	svc := &mockAlumnoService{getErr: apperrors.NuevoNotFound("alumno", 999)}
	r := rutasAlumno(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/alum/999", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status esperado 404, llegó %d", w.Code)
	}
	if w.Body.String() != "Error: alumno con id 999 no encontrado." {
		t.Errorf("cuerpo inesperado: %q", w.Body.String())
	}
}

func TestRegistrarAlumno(t *testing.T) {
	svc := &mockAlumnoService{createID: 12}
	r := rutasAlumno(svc)

	cuerpo := `{"dni":40123456,"nombre":"Ana","apellido":"García","fecha_nac":"2000-05-12","id_carrera":1}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/alum", bytes.NewBufferString(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status esperado 201, llegó %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Estado string `json:"estado"`
		ID     uint   `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta no decodificable: %v", err)
	}
	if resp.Estado != "Éxito al crear alumno" {
		t.Errorf("estado inesperado: %q", resp.Estado)
	}
	if resp.ID != 12 {
		t.Errorf("id esperado 12, llegó %d", resp.ID)
	}
}

func TestRegistrarAlumno_AtributosInvalidos(t *testing.T) {
	svc := &mockAlumnoService{}
	r := rutasAlumno(svc)

	// Falta fecha_nac y sobra edad.
	cuerpo := `{"dni":40123456,"nombre":"Ana","apellido":"García","edad":24,"id_carrera":1}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/alum", bytes.NewBufferString(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status esperado 400, llegó %d", w.Code)
	}
	if w.Body.String() != "Atributos ingresados incorrectos." {
		t.Errorf("cuerpo inesperado: %q", w.Body.String())
	}
}

func TestRegistrarAlumno_Duplicado(t *testing.T) {
	svc := &mockAlumnoService{createErr: apperrors.ErrYaExiste}
	r := rutasAlumno(svc)

	cuerpo := `{"dni":40123456,"nombre":"Ana","apellido":"García","fecha_nac":"2000-05-12","id_carrera":1}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/alum", bytes.NewBufferString(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status esperado 400, llegó %d", w.Code)
	}
	if w.Body.String() != "Bad request: Ya existe en la base de datos." {
		t.Errorf("cuerpo inesperado: %q", w.Body.String())
	}
}

func TestActualizarAlumno(t *testing.T) {
	svc := &mockAlumnoService{
		getResult: &dto.AlumnoDetalle{ID: 3, DNI: 40123456, Nombre: "Nuevo", Apellido: "García"},
	}
	r := rutasAlumno(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/alum/3", bytes.NewBufferString(`{"nombre":"Nuevo"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status esperado 200, llegó %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Éxito al actualizar alumno.") {
		t.Errorf("cuerpo inesperado: %q", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"Nuevo"`) {
		t.Errorf("debería incluir el registro actualizado: %q", w.Body.String())
	}
}

func TestActualizarAlumno_CuerpoVacio(t *testing.T) {
	svc := &mockAlumnoService{
		getResult: &dto.AlumnoDetalle{ID: 3, DNI: 40123456, Nombre: "Ana", Apellido: "García"},
	}
	r := rutasAlumno(svc)

	// Una actualización parcial sin campos no cambia nada y se acepta.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/alum/3", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status esperado 200, llegó %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Éxito al actualizar alumno.") {
		t.Errorf("cuerpo inesperado: %q", w.Body.String())
	}
}

func TestActualizarAlumno_ClaveDesconocida(t *testing.T) {
	svc := &mockAlumnoService{}
	r := rutasAlumno(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/alum/3", bytes.NewBufferString(`{"edad":24}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status esperado 400, llegó %d", w.Code)
	}
}

func TestBorrarAlumno(t *testing.T) {
	svc := &mockAlumnoService{}
	r := rutasAlumno(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/alum/3", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status esperado 200, llegó %d", w.Code)
	}
	if w.Body.String() != "Éxito al eliminar alumno." {
		t.Errorf("cuerpo inesperado: %q", w.Body.String())
	}
}

func TestBorrarAlumno_NoEncontrado(t *testing.T) {
	svc := &mockAlumnoService{deleteErr: apperrors.NuevoNotFound("alumno", 3)}
	r := rutasAlumno(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/alum/3", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status esperado 404, llegó %d", w.Code)
	}
	if w.Body.String() != "Error: alumno con id 3 no encontrado." {
		t.Errorf("cuerpo inesperado: %q", w.Body.String())
	}
}
