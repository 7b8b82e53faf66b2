package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/matiashmuller/ep-api-tp/internal/model"
	"github.com/matiashmuller/ep-api-tp/internal/repository"
)

// Mocks respaldados por mapas. Replican la semántica de los repos
// reales que importa a los servicios: not found, clave duplicada y
// paginación por offset/limit.

func paginar(ids []uint, offset, limit int) []uint {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if offset >= len(ids) {
		return nil
	}
	ids = ids[offset:]
	if limit >= 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	return ids
}

// ── Mock AlumnoRepository ──

type mockAlumnoRepo struct {
	alumnos map[uint]*model.Alumno
	nextID  uint
}

func newMockAlumnoRepo() *mockAlumnoRepo {
	return &mockAlumnoRepo{alumnos: make(map[uint]*model.Alumno), nextID: 1}
}

func (m *mockAlumnoRepo) List(_ context.Context, offset, limit int) ([]model.Alumno, int64, error) {
	ids := make([]uint, 0, len(m.alumnos))
	for id := range m.alumnos {
		ids = append(ids, id)
	}
	total := int64(len(ids))
	var result []model.Alumno
	for _, id := range paginar(ids, offset, limit) {
		result = append(result, *m.alumnos[id])
	}
	return result, total, nil
}

func (m *mockAlumnoRepo) GetByID(_ context.Context, id uint) (*model.Alumno, error) {
	if a, ok := m.alumnos[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAlumnoRepo) Create(_ context.Context, alumno *model.Alumno) error {
	for _, a := range m.alumnos {
		if a.DNI == alumno.DNI {
			return gorm.ErrDuplicatedKey
		}
	}
	alumno.ID = m.nextID
	m.nextID++
	m.alumnos[alumno.ID] = alumno
	return nil
}

func (m *mockAlumnoRepo) Update(_ context.Context, id uint, campos map[string]interface{}) error {
	a, ok := m.alumnos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := campos["nombre"].(string); ok {
		a.Nombre = v
	}
	if v, ok := campos["apellido"].(string); ok {
		a.Apellido = v
	}
	return nil
}

func (m *mockAlumnoRepo) Delete(_ context.Context, id uint) error {
	delete(m.alumnos, id)
	return nil
}

func (m *mockAlumnoRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := m.alumnos[id]
	return ok, nil
}

// ── Mock DocenteRepository ──

type mockDocenteRepo struct {
	docentes map[uint]*model.Docente
	nextID   uint
}

func newMockDocenteRepo() *mockDocenteRepo {
	return &mockDocenteRepo{docentes: make(map[uint]*model.Docente), nextID: 1}
}

func (m *mockDocenteRepo) List(_ context.Context, offset, limit int) ([]model.Docente, int64, error) {
	ids := make([]uint, 0, len(m.docentes))
	for id := range m.docentes {
		ids = append(ids, id)
	}
	total := int64(len(ids))
	var result []model.Docente
	for _, id := range paginar(ids, offset, limit) {
		result = append(result, *m.docentes[id])
	}
	return result, total, nil
}

func (m *mockDocenteRepo) GetByID(_ context.Context, id uint) (*model.Docente, error) {
	if d, ok := m.docentes[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDocenteRepo) Create(_ context.Context, docente *model.Docente) error {
	for _, d := range m.docentes {
		if d.DNI == docente.DNI {
			return gorm.ErrDuplicatedKey
		}
	}
	docente.ID = m.nextID
	m.nextID++
	m.docentes[docente.ID] = docente
	return nil
}

func (m *mockDocenteRepo) Update(_ context.Context, id uint, campos map[string]interface{}) error {
	d, ok := m.docentes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := campos["titulo"].(string); ok {
		d.Titulo = v
	}
	return nil
}

func (m *mockDocenteRepo) Delete(_ context.Context, id uint) error {
	delete(m.docentes, id)
	return nil
}

func (m *mockDocenteRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := m.docentes[id]
	return ok, nil
}

// ── Mock CarreraRepository ──

type mockCarreraRepo struct {
	carreras map[uint]*model.Carrera
	nextID   uint
}

func newMockCarreraRepo() *mockCarreraRepo {
	return &mockCarreraRepo{carreras: make(map[uint]*model.Carrera), nextID: 1}
}

func (m *mockCarreraRepo) List(_ context.Context, offset, limit int) ([]model.Carrera, int64, error) {
	ids := make([]uint, 0, len(m.carreras))
	for id := range m.carreras {
		ids = append(ids, id)
	}
	total := int64(len(ids))
	var result []model.Carrera
	for _, id := range paginar(ids, offset, limit) {
		result = append(result, *m.carreras[id])
	}
	return result, total, nil
}

func (m *mockCarreraRepo) GetByID(_ context.Context, id uint) (*model.Carrera, error) {
	if c, ok := m.carreras[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCarreraRepo) Create(_ context.Context, carrera *model.Carrera) error {
	carrera.ID = m.nextID
	m.nextID++
	m.carreras[carrera.ID] = carrera
	return nil
}

func (m *mockCarreraRepo) Update(_ context.Context, id uint, campos map[string]interface{}) error {
	c, ok := m.carreras[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := campos["nombre"].(string); ok {
		c.Nombre = v
	}
	return nil
}

func (m *mockCarreraRepo) Delete(_ context.Context, id uint) error {
	delete(m.carreras, id)
	return nil
}

func (m *mockCarreraRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := m.carreras[id]
	return ok, nil
}

// ── Mock MateriaRepository ──

type mockMateriaRepo struct {
	materias map[uint]*model.Materia
	nextID   uint
}

func newMockMateriaRepo() *mockMateriaRepo {
	return &mockMateriaRepo{materias: make(map[uint]*model.Materia), nextID: 1}
}

func (m *mockMateriaRepo) List(_ context.Context, offset, limit int) ([]model.Materia, int64, error) {
	ids := make([]uint, 0, len(m.materias))
	for id := range m.materias {
		ids = append(ids, id)
	}
	total := int64(len(ids))
	var result []model.Materia
	for _, id := range paginar(ids, offset, limit) {
		result = append(result, *m.materias[id])
	}
	return result, total, nil
}

func (m *mockMateriaRepo) GetByID(_ context.Context, id uint) (*model.Materia, error) {
	if mat, ok := m.materias[id]; ok {
		return mat, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMateriaRepo) Create(_ context.Context, materia *model.Materia) error {
	materia.ID = m.nextID
	m.nextID++
	m.materias[materia.ID] = materia
	return nil
}

func (m *mockMateriaRepo) Update(_ context.Context, id uint, campos map[string]interface{}) error {
	if _, ok := m.materias[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (m *mockMateriaRepo) Delete(_ context.Context, id uint) error {
	delete(m.materias, id)
	return nil
}

func (m *mockMateriaRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := m.materias[id]
	return ok, nil
}

// ── Mock ComisionRepository ──

type mockComisionRepo struct {
	comisiones map[uint]*model.Comision
	nextID     uint
}

func newMockComisionRepo() *mockComisionRepo {
	return &mockComisionRepo{comisiones: make(map[uint]*model.Comision), nextID: 1}
}

func (m *mockComisionRepo) List(_ context.Context, offset, limit int) ([]model.Comision, int64, error) {
	ids := make([]uint, 0, len(m.comisiones))
	for id := range m.comisiones {
		ids = append(ids, id)
	}
	total := int64(len(ids))
	var result []model.Comision
	for _, id := range paginar(ids, offset, limit) {
		result = append(result, *m.comisiones[id])
	}
	return result, total, nil
}

func (m *mockComisionRepo) GetByID(_ context.Context, id uint) (*model.Comision, error) {
	if c, ok := m.comisiones[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockComisionRepo) Create(_ context.Context, comision *model.Comision) error {
	for _, c := range m.comisiones {
		if c.IDDocente == comision.IDDocente && c.Dias == comision.Dias && c.Turno == comision.Turno {
			return gorm.ErrDuplicatedKey
		}
		if c.Letra == comision.Letra && c.IDMateria == comision.IDMateria {
			return gorm.ErrDuplicatedKey
		}
	}
	comision.ID = m.nextID
	m.nextID++
	m.comisiones[comision.ID] = comision
	return nil
}

func (m *mockComisionRepo) Update(_ context.Context, id uint, campos map[string]interface{}) error {
	if _, ok := m.comisiones[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (m *mockComisionRepo) Delete(_ context.Context, id uint) error {
	delete(m.comisiones, id)
	return nil
}

func (m *mockComisionRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := m.comisiones[id]
	return ok, nil
}

// ── Mock AlumnoMateriaRepository ──

type mockAlumnoMateriaRepo struct {
	registros map[uint]*model.AlumnoMateria
	nextID    uint
}

func newMockAlumnoMateriaRepo() *mockAlumnoMateriaRepo {
	return &mockAlumnoMateriaRepo{registros: make(map[uint]*model.AlumnoMateria), nextID: 1}
}

func (m *mockAlumnoMateriaRepo) List(_ context.Context, offset, limit int) ([]model.AlumnoMateria, int64, error) {
	ids := make([]uint, 0, len(m.registros))
	for id := range m.registros {
		ids = append(ids, id)
	}
	total := int64(len(ids))
	var result []model.AlumnoMateria
	for _, id := range paginar(ids, offset, limit) {
		result = append(result, *m.registros[id])
	}
	return result, total, nil
}

func (m *mockAlumnoMateriaRepo) GetByID(_ context.Context, id uint) (*model.AlumnoMateria, error) {
	if r, ok := m.registros[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAlumnoMateriaRepo) Create(_ context.Context, registro *model.AlumnoMateria) error {
	for _, r := range m.registros {
		if r.IDAlumno == registro.IDAlumno && r.IDMateria == registro.IDMateria {
			return gorm.ErrDuplicatedKey
		}
	}
	registro.ID = m.nextID
	m.nextID++
	m.registros[registro.ID] = registro
	return nil
}

func (m *mockAlumnoMateriaRepo) Update(_ context.Context, id uint, campos map[string]interface{}) error {
	if _, ok := m.registros[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (m *mockAlumnoMateriaRepo) Delete(_ context.Context, id uint) error {
	delete(m.registros, id)
	return nil
}

// ── Mock CarreraMateriaRepository ──

type mockCarreraMateriaRepo struct {
	registros map[uint]*model.CarreraMateria
	nextID    uint
}

func newMockCarreraMateriaRepo() *mockCarreraMateriaRepo {
	return &mockCarreraMateriaRepo{registros: make(map[uint]*model.CarreraMateria), nextID: 1}
}

func (m *mockCarreraMateriaRepo) List(_ context.Context, offset, limit int) ([]model.CarreraMateria, int64, error) {
	ids := make([]uint, 0, len(m.registros))
	for id := range m.registros {
		ids = append(ids, id)
	}
	total := int64(len(ids))
	var result []model.CarreraMateria
	for _, id := range paginar(ids, offset, limit) {
		result = append(result, *m.registros[id])
	}
	return result, total, nil
}

func (m *mockCarreraMateriaRepo) GetByID(_ context.Context, id uint) (*model.CarreraMateria, error) {
	if r, ok := m.registros[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCarreraMateriaRepo) Create(_ context.Context, registro *model.CarreraMateria) error {
	for _, r := range m.registros {
		if r.IDCarrera == registro.IDCarrera && r.IDMateria == registro.IDMateria {
			return gorm.ErrDuplicatedKey
		}
	}
	registro.ID = m.nextID
	m.nextID++
	m.registros[registro.ID] = registro
	return nil
}

func (m *mockCarreraMateriaRepo) Update(_ context.Context, id uint, campos map[string]interface{}) error {
	if _, ok := m.registros[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (m *mockCarreraMateriaRepo) Delete(_ context.Context, id uint) error {
	delete(m.registros, id)
	return nil
}

// ── Mock UsuarioRepository ──

type mockUsuarioRepo struct {
	usuarios map[uint]*model.Usuario
	nextID   uint
}

func newMockUsuarioRepo() *mockUsuarioRepo {
	return &mockUsuarioRepo{usuarios: make(map[uint]*model.Usuario), nextID: 1}
}

func (m *mockUsuarioRepo) Create(_ context.Context, usuario *model.Usuario) error {
	for _, u := range m.usuarios {
		if u.Nombre == usuario.Nombre {
			return gorm.ErrDuplicatedKey
		}
	}
	usuario.ID = m.nextID
	m.nextID++
	m.usuarios[usuario.ID] = usuario
	return nil
}

func (m *mockUsuarioRepo) GetByNombre(_ context.Context, nombre string) (*model.Usuario, error) {
	for _, u := range m.usuarios {
		if u.Nombre == nombre {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) GetByNombreOEmail(_ context.Context, nombre, email string) (*model.Usuario, error) {
	for _, u := range m.usuarios {
		if (nombre != "" && u.Nombre == nombre) || (email != "" && u.Email == email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Armado de repos de prueba ──

func setupTestRepos() *repository.Repository {
	return &repository.Repository{
		Alumno:         newMockAlumnoRepo(),
		Docente:        newMockDocenteRepo(),
		Carrera:        newMockCarreraRepo(),
		Materia:        newMockMateriaRepo(),
		Comision:       newMockComisionRepo(),
		AlumnoMateria:  newMockAlumnoMateriaRepo(),
		CarreraMateria: newMockCarreraMateriaRepo(),
		Usuario:        newMockUsuarioRepo(),
	}
}
