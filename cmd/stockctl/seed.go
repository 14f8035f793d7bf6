package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// seedRow una línea del CSV de carga: nombre y cantidad.
type seedRow struct {
	Line   int
	Name   string
	Amount decimal.Decimal
}

// decodeInput envuelve r según la codificación del archivo (utf8 o latin1).
func decodeInput(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf8", "utf-8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada %q", encoding)
	}
}

// parseSeedCSV lee filas "nombre,cantidad". Acepta separador coma o punto y coma,
// una cabecera opcional y omite líneas vacías. Los nombres repetidos se suman.
func parseSeedCSV(r io.Reader, encoding string) ([]seedRow, error) {
	in, err := decodeInput(r, encoding)
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	text := strings.TrimPrefix(string(raw), "\ufeff")

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if firstLine, _, _ := strings.Cut(text, "\n"); strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		cr.Comma = ';'
	}

	var rows []seedRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperan nombre y cantidad", line)
		}
		name := strings.TrimSpace(rec[0])
		amountText := strings.TrimSpace(rec[1])
		amount, err := decimal.NewFromString(amountText)
		if err != nil {
			if len(rows) == 0 && line == 1 {
				continue // cabecera
			}
			return nil, fmt.Errorf("línea %d: cantidad inválida %q", line, amountText)
		}
		if name == "" {
			return nil, fmt.Errorf("línea %d: nombre vacío", line)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("línea %d: cantidad negativa", line)
		}
		rows = append(rows, seedRow{Line: line, Name: name, Amount: amount})
	}
	return rows, nil
}
