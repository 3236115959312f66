package fakedata

// Word pools in Spanish. Some surnames carry apostrophes on purpose so that
// literal escaping is exercised by every reasonably sized run.
var (
	surnames = []string{
		"García", "Fernández", "González", "Rodríguez", "López", "Martínez",
		"Sánchez", "Pérez", "Gómez", "Martín", "Jiménez", "Ruiz", "Hernández",
		"Díaz", "Moreno", "Álvarez", "Muñoz", "Romero", "Alonso", "Gutiérrez",
		"Navarro", "Torres", "Domínguez", "Vázquez", "Ramos", "Gil", "Ramírez",
		"Serrano", "Blanco", "Molina", "Morales", "Suárez", "Ortega", "Delgado",
		"Castro", "Ortiz", "Rubio", "Marín", "Sanz", "Iglesias", "Núñez",
		"Medina", "Garrido", "Cortés", "Castillo", "Santos", "Lozano", "Guerrero",
		"O'Donnell", "O'Connor", "D'Ors", "Dell'Oro",
	}

	companySuffixes = []string{
		"S.A.", "S.L.", "S.L.L.", "S.Coop.", "S.A.U.", "S.L.U.", "and Sons",
	}

	companyPrefixes = []string{
		"Grupo", "Hermanos", "Comercial", "Distribuciones", "Industrias",
		"Talleres", "Suministros", "Corporación",
	}

	phraseNouns = []string{
		"Adaptador", "Algoritmo", "Arquitectura", "Base de datos", "Capacidad",
		"Conjunto", "Emulación", "Estrategia", "Extranet", "Firmware",
		"Flexibilidad", "Implementación", "Infraestructura", "Interfaz",
		"Jerarquía", "Lógica", "Matriz", "Metodología", "Middleware", "Modelo",
		"Paradigma", "Plataforma", "Portal", "Proceso", "Producto", "Proyección",
		"Red", "Sinergia", "Sistema", "Solución", "Superestructura",
	}

	phraseAdjectives = []string{
		"adaptativo", "avanzado", "automatizado", "centralizado", "compatible",
		"configurable", "descentralizado", "digitalizado", "distribuido",
		"ergonómico", "escalable", "exclusivo", "extendido", "integrado",
		"intuitivo", "mejorado", "multicanal", "multiplataforma", "optimizado",
		"orgánico", "persistente", "programable", "proactivo", "reactivo",
		"robusto", "seguro", "sincronizado", "universal", "virtual",
	}

	phraseQualifiers = []string{
		"24 horas", "a medida", "asíncrono", "bidireccional", "de alto nivel",
		"de tercera generación", "dinámico", "en tiempo real", "global",
		"heurístico", "local", "modular", "multimedia", "neutral", "nacional",
		"orientado a objetos", "sistemático", "tangible", "uniforme",
	}

	colors = []string{
		"Aguamarina", "Amarillo", "Añil", "Azul", "Azul marino", "Beige",
		"Blanco", "Borgoña", "Burdeos", "Carmesí", "Cian", "Coral", "Chocolate",
		"Dorado", "Esmeralda", "Fucsia", "Granate", "Gris", "Índigo", "Lavanda",
		"Lila", "Magenta", "Marrón", "Malva", "Naranja", "Negro", "Ocre",
		"Oliva", "Plata", "Púrpura", "Rojo", "Rosa", "Salmón", "Siena",
		"Turquesa", "Verde", "Verde lima", "Violeta",
	}
)
