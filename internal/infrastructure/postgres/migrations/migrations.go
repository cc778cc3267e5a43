// Package migrations embebe los scripts SQL de goose.
// Solo tablas y catálogos: los cuerpos de los procedimientos almacenados son
// propiedad del equipo de base de datos y se despliegan por separado.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
