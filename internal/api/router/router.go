package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matiashmuller/ep-api-tp/config"
	"github.com/matiashmuller/ep-api-tp/internal/api/handler"
	"github.com/matiashmuller/ep-api-tp/internal/api/middleware"
	"github.com/matiashmuller/ep-api-tp/pkg/jwt"
)

// Setup arma el motor gin con middlewares y rutas.
// El logger que recibe es el de peticiones, con persistencia en la
// tabla logs.
func Setup(cfg *config.Config, h *handler.Handler, jwtManager *jwt.Manager, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middlewares globales ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── Chequeo de salud ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── Autenticación ──
	auth := r.Group("/auth")
	{
		auth.POST("/registro", h.Auth.RegistrarUsuario)
		auth.POST("/login", h.Auth.IniciarSesion)
		auth.GET("/logout", h.Auth.CerrarSesion)
		auth.GET("/cuenta", middleware.ValidarToken(jwtManager), h.Auth.VerCuenta)
	}

	// ── Rutas protegidas por token ──
	protegidas := r.Group("")
	protegidas.Use(middleware.ValidarToken(jwtManager))
	{
		alum := protegidas.Group("/alum")
		{
			alum.GET("", h.Alumno.ListarAlumnos)
			alum.GET("/:id", h.Alumno.ObtenerAlumno)
			alum.POST("", h.Alumno.RegistrarAlumno)
			alum.PUT("/:id", h.Alumno.ActualizarAlumno)
			alum.DELETE("/:id", h.Alumno.BorrarAlumno)
		}

		doc := protegidas.Group("/doc")
		{
			doc.GET("", h.Docente.ListarDocentes)
			doc.GET("/:id", h.Docente.ObtenerDocente)
			doc.POST("", h.Docente.RegistrarDocente)
			doc.PUT("/:id", h.Docente.ActualizarDocente)
			doc.DELETE("/:id", h.Docente.BorrarDocente)
		}

		car := protegidas.Group("/car")
		{
			car.GET("", h.Carrera.ListarCarreras)
			car.GET("/:id", h.Carrera.ObtenerCarrera)
			car.POST("", h.Carrera.RegistrarCarrera)
			car.PUT("/:id", h.Carrera.ActualizarCarrera)
			car.DELETE("/:id", h.Carrera.BorrarCarrera)
		}

		mat := protegidas.Group("/mat")
		{
			mat.GET("", h.Materia.ListarMaterias)
			mat.GET("/:id", h.Materia.ObtenerMateria)
			mat.POST("", h.Materia.RegistrarMateria)
			mat.PUT("/:id", h.Materia.ActualizarMateria)
			mat.DELETE("/:id", h.Materia.BorrarMateria)
		}

		com := protegidas.Group("/com")
		{
			com.GET("", h.Comision.ListarComisiones)
			com.GET("/:id", h.Comision.ObtenerComision)
			com.POST("", h.Comision.RegistrarComision)
			com.PUT("/:id", h.Comision.ActualizarComision)
			com.DELETE("/:id", h.Comision.BorrarComision)
		}

		almat := protegidas.Group("/almat")
		{
			almat.GET("", h.AlumnoMateria.ListarAlumnoMateria)
			almat.GET("/:id", h.AlumnoMateria.ObtenerAlumnoMateria)
			almat.POST("", h.AlumnoMateria.RegistrarAlumnoMateria)
			almat.PUT("/:id", h.AlumnoMateria.ActualizarAlumnoMateria)
			almat.DELETE("/:id", h.AlumnoMateria.BorrarAlumnoMateria)
		}

		carmat := protegidas.Group("/carmat")
		{
			carmat.GET("", h.CarreraMateria.ListarCarreraMateria)
			carmat.GET("/:id", h.CarreraMateria.ObtenerCarreraMateria)
			carmat.POST("", h.CarreraMateria.RegistrarCarreraMateria)
			carmat.PUT("/:id", h.CarreraMateria.ActualizarCarreraMateria)
			carmat.DELETE("/:id", h.CarreraMateria.BorrarCarreraMateria)
		}

		protegidas.GET("/exportar/alumnos", h.Export.ExportarAlumnos)
	}

	return r
}
