package repository

import "context"

// SPGateway es la frontera de invocación de procedimientos almacenados.
// La lógica de negocio vive en la base de datos; este puerto solo traduce:
// nombre de procedimiento + parámetros posicionales -> filas de resultado.
//
// Convención de la migración MySQL→PostgreSQL: los SP se portaron como
// funciones set-returning. Los mutadores devuelven sus parámetros OUT como
// columnas de una única fila (p.ej. codusu, codcliente, mensajesp) y los
// fallos de regla de negocio llegan con el prefijo "Error:", ya sea en la
// columna de mensaje o vía RAISE EXCEPTION (que el adaptador traduce a
// *domain.ErrorSP).
type SPGateway interface {
	// Consultar invoca un procedimiento de solo lectura y devuelve su result
	// set como mapas columna->valor (claves en minúsculas, como las entrega
	// PostgreSQL).
	Consultar(ctx context.Context, proc string, args ...any) ([]map[string]any, error)
	// Ejecutar invoca un procedimiento mutador dentro de una transacción
	// explícita. Las filas devueltas (con los valores OUT) solo se entregan
	// al caller después del Commit; cualquier error hace Rollback para no
	// dejar escrituras parciales.
	Ejecutar(ctx context.Context, proc string, args ...any) ([]map[string]any, error)
}
