// seed_ubigeo genera un script SQL para poblar t_ubigeo a partir del padrón
// de ubigeos del INEI (CSV separado por punto y coma, codificado en Latin-1):
//
//	codubigeo;departamento;provincia;distrito
//
// Uso: go run ./cmd/seed_ubigeo [ruta/ubigeos.csv]
// Por defecto busca ubigeos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/00003_seed_ubigeo.sql
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type ubigeo struct {
	cod, depart, provin, distrit string
}

func main() {
	csvPath := "ubigeos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El padrón del INEI viene en ISO-8859-1 (tildes y eñes).
	sc := bufio.NewScanner(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))

	seen := make(map[string]bool)
	var filas []ubigeo
	for sc.Scan() {
		linea := strings.TrimSpace(sc.Text())
		if linea == "" || strings.HasPrefix(strings.ToLower(linea), "codubigeo") {
			continue
		}
		campos := strings.Split(linea, ";")
		if len(campos) < 4 {
			continue
		}
		cod := strings.TrimSpace(campos[0])
		if len(cod) != 6 || seen[cod] {
			continue
		}
		seen[cod] = true
		filas = append(filas, ubigeo{
			cod:     cod,
			depart:  strings.TrimSpace(campos[1]),
			provin:  strings.TrimSpace(campos[2]),
			distrit: strings.TrimSpace(campos[3]),
		})
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	// Orden estable por código
	sort.Slice(filas, func(i, j int) bool { return filas[i].cod < filas[j].cod })

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "00003_seed_ubigeo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- +goose Up\n")
	out.WriteString("-- Ubigeos Perú (INEI). Generado desde el padrón oficial por cmd/seed_ubigeo.\n")
	for _, u := range filas {
		fmt.Fprintf(out, "INSERT INTO t_ubigeo (codubigeo, depart, provin, distrit) VALUES ('%s', '%s', '%s', '%s')\n",
			u.cod, escapeSQL(u.depart), escapeSQL(u.provin), escapeSQL(u.distrit))
		out.WriteString("ON CONFLICT (codubigeo) DO UPDATE SET depart = EXCLUDED.depart, provin = EXCLUDED.provin, distrit = EXCLUDED.distrit;\n")
	}
	out.WriteString("\n-- +goose Down\n")
	out.WriteString("DELETE FROM t_ubigeo;\n")

	fmt.Printf("Generado %s: %d ubigeos\n", outPath, len(filas))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
