// seed generates a SQL script to populate buildings and cost centers from the
// campus facilities export, a Latin-1 CSV with columns:
// cost_center_code, cost_center_name, building_name.
//
// Usage: go run ./cmd/seed [path/facilities.csv]
// Defaults to facilities.csv in the current directory.
// Writes: internal/infrastructure/postgres/migrations/002_seed_facilities.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	csvPath := "facilities.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// The campus export comes out of a legacy system in ISO-8859-1.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.FieldsPerRecord = 3
	rows, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode CSV: %v\n", err)
		os.Exit(1)
	}

	// Unique cost centers: code -> name. First row is the header.
	ccMap := make(map[string]string)
	var buildings []struct{ name, ccCode string }
	for i, row := range rows {
		if i == 0 {
			continue
		}
		code := strings.TrimSpace(row[0])
		ccName := strings.TrimSpace(row[1])
		building := strings.TrimSpace(row[2])
		if code == "" || ccName == "" {
			continue
		}
		ccMap[code] = ccName
		if building != "" {
			buildings = append(buildings, struct{ name, ccCode string }{name: building, ccCode: code})
		}
	}

	// Sort cost centers by code for stable output
	var ccCodes []string
	for c := range ccMap {
		ccCodes = append(ccCodes, c)
	}
	sort.Strings(ccCodes)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_facilities.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Campus cost centers and buildings\n")
	out.WriteString("-- Generated from facilities.csv\n\n")

	out.WriteString("-- 1. Cost centers\n")
	out.WriteString("INSERT INTO cost_centers (code, name) VALUES\n")
	for i, c := range ccCodes {
		name := escapeSQL(ccMap[c])
		if i < len(ccCodes)-1 {
			fmt.Fprintf(out, "  ('%s', '%s'),\n", c, name)
		} else {
			fmt.Fprintf(out, "  ('%s', '%s')\n", c, name)
		}
	}
	out.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name;\n\n")

	// 2. Buildings with a subquery to the owning cost center
	out.WriteString("-- 2. Buildings\n")
	for _, b := range buildings {
		name := escapeSQL(b.name)
		fmt.Fprintf(out, "INSERT INTO buildings (name, cost_center_id)\n")
		fmt.Fprintf(out, "SELECT '%s', id FROM cost_centers WHERE code = '%s'\n", name, b.ccCode)
		out.WriteString("ON CONFLICT (name) DO UPDATE SET cost_center_id = EXCLUDED.cost_center_id;\n")
	}

	fmt.Printf("Generated %s: %d cost centers, %d buildings\n", outPath, len(ccCodes), len(buildings))
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
