// seed_countries genera el script SQL que puebla la tabla paramétrica de
// países a partir de un XML de referencia (ISO 3166 + moneda + multiplicador).
//
// Uso: go run ./cmd/seed_countries [ruta/Paises.xml]
// Por defecto busca Paises.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_countries.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type paises struct {
	Valores []pais `xml:"pais"`
}

type pais struct {
	Cod        string `xml:"cod,attr"`
	Nombre     string `xml:"nombre,attr"`
	Region     string `xml:"region,attr"`
	Multiplier string `xml:"multiplicador,attr"`
	Moneda     struct {
		Codigo string `xml:"codigo,attr"`
		Nombre string `xml:"nombre,attr"`
	} `xml:"moneda"`
}

func main() {
	xmlPath := "Paises.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var p paises
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&p); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	var rows []pais
	for _, v := range p.Valores {
		if v.Cod == "" || v.Nombre == "" || v.Moneda.Codigo == "" || v.Multiplier == "" {
			continue
		}
		v.Cod = strings.ToUpper(strings.TrimSpace(v.Cod))
		v.Nombre = strings.TrimSpace(v.Nombre)
		v.Moneda.Codigo = strings.ToUpper(strings.TrimSpace(v.Moneda.Codigo))
		rows = append(rows, v)
	}

	// Orden alfabético por nombre para salida estable
	sort.Slice(rows, func(i, j int) bool { return rows[i].Nombre < rows[j].Nombre })

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_countries.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Seed de países de referencia. Generado por cmd/seed_countries; los\n")
	out.WriteString("-- multiplicadores base se ajustan después vía el endpoint admin.\n")
	out.WriteString("INSERT INTO countries (id, name, code, region, currency, currency_code, multiplier, created_at, updated_at) VALUES\n")
	for i, r := range rows {
		sep := ","
		if i == len(rows)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  (gen_random_uuid(), '%s', '%s', '%s', '%s', '%s', %s, now(), now())%s\n",
			escapeSQL(r.Nombre), r.Cod, escapeSQL(r.Region),
			escapeSQL(r.Moneda.Nombre), r.Moneda.Codigo, r.Multiplier, sep)
	}
	out.WriteString("ON CONFLICT (code) DO NOTHING;\n")

	fmt.Printf("Generado %s: %d países\n", outPath, len(rows))
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
