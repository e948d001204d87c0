// SPDX-License-Identifier: MIT
// YAML codec for sparse matrices in coordinate (triplet) form.
//
// Document layout:
//
//	rows: 4
//	cols: 5
//	entries:
//	  - {row: 0, col: 0, val: 1.23}
//	  - {row: 0, col: 2, val: 4.56}
//
// Coordinate form is the interchange format: order is arbitrary and
// duplicates resolve last-write-wins, exactly like csr.FromCOO.
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsparse/csr"
)

// matrixDoc is the on-disk YAML shape of a coordinate-form matrix.
type matrixDoc struct {
	Rows    int        `yaml:"rows"`
	Cols    int        `yaml:"cols"`
	Entries []entryDoc `yaml:"entries"`
}

type entryDoc struct {
	Row int     `yaml:"row"`
	Col int     `yaml:"col"`
	Val float64 `yaml:"val"`
}

// readMatrix loads a YAML coordinate document and assembles a validated
// CSR matrix. Structural errors (bad shape, out-of-range coordinates)
// surface as the csr package sentinels.
func readMatrix(path string) (*csr.CSR, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc matrixDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	c := &csr.COO{Rows: doc.Rows, Cols: doc.Cols, Entries: make([]csr.Entry, 0, len(doc.Entries))}
	for _, e := range doc.Entries {
		c.Entries = append(c.Entries, csr.Entry{Row: e.Row, Col: e.Col, Val: e.Val})
	}

	m, err := csr.FromCOO(c)
	if err != nil {
		return nil, fmt.Errorf("assemble %s: %w", path, err)
	}

	return m, nil
}

// writeMatrix exports m in coordinate form. Entries come out in row-major
// storage order, so reading the file back reproduces the matrix exactly.
func writeMatrix(path string, m *csr.CSR) error {
	c := m.ToCOO()
	doc := matrixDoc{Rows: c.Rows, Cols: c.Cols, Entries: make([]entryDoc, 0, len(c.Entries))}
	for _, e := range c.Entries {
		doc.Entries = append(doc.Entries, entryDoc{Row: e.Row, Col: e.Col, Val: e.Val})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
