package mock

import "github.com/comunidar/comunidad-api/internal/domain/entity"

// Dataset inicial congelado. Reset carga siempre una copia de estas
// semillas, nunca los slices originales.
//
// Los hashes de password corresponden a "comunidad123" (bcrypt, costo 10).
const hashDemo = "$2a$10$N9qo8uLOickgx2ZMRZoMye2rzbJcQdOba72qdxRlo4ZWiB1fjF.7e"

var semillaAuthUsers = []entity.AuthUser{
	{ID: 1, Email: "admin@comunidad.org", PasswordHash: hashDemo, Rol: entity.RolAdmin, IDUsuario: 1},
	{ID: 2, Email: "marta.agente@comunidad.org", PasswordHash: hashDemo, Rol: entity.RolAgente, IDUsuario: 2, IDEspacio: 1},
	{ID: 3, Email: "hector.efector@comunidad.org", PasswordHash: hashDemo, Rol: entity.RolEfector, IDUsuario: 3, IDEspacio: 2},
	{ID: 4, Email: "rosa.referente@comunidad.org", PasswordHash: hashDemo, Rol: entity.RolReferente, IDUsuario: 4},
}

var semillaUsuarios = []entity.Usuario{
	{ID: 1, Nombre: "Silvana", Apellido: "Quiroga", DNI: "20345678", Rol: entity.RolAdmin,
		IsVerified: entity.VerificacionAprobado, Telefono: "2215550101"},
	{ID: 2, Nombre: "Marta", Apellido: "Benítez", DNI: "27888999", Rol: entity.RolAgente,
		IsVerified: entity.VerificacionAprobado, IDEspacio: 1, Telefono: "2215550102",
		DireccionResidencia: "Calle 7 n 1234", Barrio: "El Retiro"},
	{ID: 3, Nombre: "Héctor", Apellido: "Luna", DNI: "25123456", Rol: entity.RolEfector,
		IsVerified: entity.VerificacionAprobado, EsEfector: true, EsETratante: true,
		IDEspacio: 2, Telefono: "2215550103", ObraSocial: "IOMA"},
	{ID: 4, Nombre: "Rosa", Apellido: "Medina", DNI: "30456789", Rol: entity.RolReferente,
		IsVerified: entity.VerificacionAprobado, Telefono: "2215550104",
		DireccionResidencia: "Diagonal 74 n 560", Barrio: "Villa Elvira"},
	{ID: 5, Nombre: "Lucas", Apellido: "Paredes", DNI: "46111222", Rol: entity.RolUsmya,
		IsVerified: entity.VerificacionAprobado, FechaNacimiento: "2008-04-17",
		CreadoPor: 4, Alias: "Luca", GeneroAutopercibido: "varón",
		Barrio: "El Retiro", Intereses: "fútbol, música"},
	{ID: 6, Nombre: "Camila", Apellido: "Sosa", DNI: "47333444", Rol: entity.RolUsmya,
		IsVerified: entity.VerificacionAprobado, FechaNacimiento: "2009-09-02",
		CreadoPor: 4, GeneroAutopercibido: "mujer", Barrio: "Villa Elvira",
		Necesidades: "acompañamiento escolar", Etiquetas: []int{1, 3}},
	{ID: 7, Nombre: "Brian", Apellido: "Ojeda", DNI: "48555666", Rol: entity.RolUsmya,
		IsVerified: entity.VerificacionPendiente, RequiereAprobacion: true,
		FechaNacimiento: "2010-01-23", CreadoPor: 3},
	{ID: 8, Nombre: "Paula", Apellido: "Ferreyra", DNI: "33777888", Rol: entity.RolReferente,
		IsVerified: entity.VerificacionPendiente, RequiereAprobacion: true,
		RegistroConUsmya: true, Telefono: "2215550108"},
}

var semillaEspacios = []entity.Espacio{
	{ID: 1, Nombre: "Club Atlético El Retiro", Telefono: "2214447001",
		Direccion: "Calle 44 n 2890", Barrio: "El Retiro", Tipo: entity.EspacioClub,
		Encargado: "Jorge Ávalos", DNIEncargado: "18222333",
		Horario:            "Lunes a viernes 14 a 19",
		PoblacionVinculada: []string{"niñeces", "adolescencias"},
		ActividadPrincipal: "fútbol infantil", ActividadSecundaria: "apoyo escolar",
		TieneInternet: true, TieneDispositivos: false},
	{ID: 2, Nombre: "Centro de Salud n 42", Telefono: "2214447002",
		Direccion: "Av. 90 n 1210", Barrio: "Villa Elvira", Tipo: entity.EspacioCentroSalud,
		Encargado: "Dra. Inés Gallo", DNIEncargado: "21444555",
		Horario:            "Lunes a sábado 8 a 16",
		PoblacionVinculada: []string{"adolescencias", "familias"},
		ActividadPrincipal: "consultorio adolescente",
		TieneInternet:      true, TieneDispositivos: true},
	{ID: 3, Nombre: "Merendero Los Horneros", Telefono: "",
		Direccion: "Calle 122 bis n 87", Barrio: "Altos de San Lorenzo",
		Tipo: entity.EspacioMerendero, Encargado: "Norma Ledesma",
		Horario:            "Martes y jueves 16 a 18",
		PoblacionVinculada: []string{"niñeces"},
		ActividadPrincipal: "merienda y juegoteca",
		TieneInternet:      false, TieneDispositivos: false},
}

var semillaActividades = []entity.Actividad{
	{ID: 1, Nombre: "Fútbol mixto sub-16", Descripcion: "Entrenamiento semanal en cancha auxiliar",
		Fecha: "2025-11-03", HoraInicio: "16:00", HoraFin: "18:00",
		Responsable: "Jorge Ávalos", Lugar: "Club Atlético El Retiro",
		EsFija: true, Estado: entity.ActividadAprobada, IDEspacio: 1},
	{ID: 2, Nombre: "Taller de radio", Descripcion: "Producción de un programa con jóvenes del barrio",
		Fecha: "2025-11-05", HoraInicio: "17:30", HoraFin: "19:00",
		Responsable: "Marta Benítez", Lugar: "SUM del club",
		EsFija: false, Estado: entity.ActividadAprobada, IDEspacio: 1},
	{ID: 3, Nombre: "Consejería en salud sexual", Descripcion: "Espacio de consulta sin turno",
		Fecha: "2025-11-07", HoraInicio: "10:00", HoraFin: "12:00",
		Responsable: "Dra. Inés Gallo", Lugar: "Centro de Salud n 42",
		EsFija: true, Estado: entity.ActividadPendiente, IDEspacio: 2},
}

var semillaAsistencias = []entity.Asistencia{
	{ID: 1, IDActividad: 1, IDUser: 5, Estado: entity.AsistenciaPresente},
	{ID: 2, IDActividad: 1, IDUser: 6, Estado: entity.AsistenciaAusente, Observacion: "avisó que estaba enferma"},
	{ID: 3, IDActividad: 2, IDUser: 5, Estado: entity.AsistenciaPresente, Observacion: "participó del bloque de entrevistas"},
}

var semillaChats = []entity.Chat{
	{ID: 1, IDUsmya: 5, Tipo: entity.ChatGeneral},
	{ID: 2, IDUsmya: 6, Tipo: entity.ChatTratante},
}

var semillaIntegrantesChat = []entity.IntegranteChat{
	{ID: 1, IDChat: 1, IDUser: 4},
	{ID: 2, IDChat: 1, IDUser: 5},
	{ID: 3, IDChat: 2, IDUser: 3},
	{ID: 4, IDChat: 2, IDUser: 6},
}

var semillaMensajes = []entity.Mensaje{
	{ID: 1, IDChat: 1, IDEmisor: 4, Texto: "Hola Luca, ¿vas al entrenamiento del lunes?",
		Fecha: "2025-11-01", Hora: "09:30"},
	{ID: 2, IDChat: 1, IDEmisor: 5, Texto: "Sí, voy con Brian",
		Fecha: "2025-11-03", Hora: "16:25"},
	{ID: 3, IDChat: 2, IDEmisor: 3, Texto: "Camila, recordá el control del jueves",
		Fecha: "2025-11-04", Hora: "11:10"},
}

var semillaReferenteUsmya = []entity.ReferenteUsmya{
	{ID: 1, IDReferente: 4, IDUsmya: 5},
	{ID: 2, IDReferente: 4, IDUsmya: 6},
}

var semillaEfectorUsmya = []entity.EfectorUsmya{
	{ID: 1, IDEfector: 3, IDUsmya: 6},
}

var semillaNotasTrayectoria = []entity.NotaTrayectoria{
	{ID: 1, IDUsmya: 5, IDAutor: 4, Titulo: "Primer acercamiento",
		Observacion: "Se sumó al grupo de fútbol por iniciativa propia",
		Fecha:       "2025-10-20", Hora: "18:00"},
	{ID: 2, IDUsmya: 6, IDAutor: 3, Titulo: "Control de salud",
		Observacion: "Se realizó control general, sin novedades",
		Fecha:       "2025-10-28", Hora: "10:45"},
}

var semillaTags = []entity.Tag{
	{ID: 1, Nombre: "educación", Descripcion: "Acompañamiento y continuidad escolar"},
	{ID: 2, Nombre: "salud", Descripcion: "Controles y tratamientos de salud"},
	{ID: 3, Nombre: "vivienda", Descripcion: "Situación habitacional"},
	{ID: 4, Nombre: "deporte", Descripcion: "Participación en actividades deportivas"},
}
