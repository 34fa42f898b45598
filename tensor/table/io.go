// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/tablemerge/base/errors"
	"cogentcore.org/tablemerge/base/metadata"
	"cogentcore.org/tablemerge/tensor"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value.
	// When reading, any run of white space separates values.
	Space

	// Detect is used during reading a file -- reads the first line and detects tabs or commas
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

var delimNames = map[string]Delims{"tab": Tab, "comma": Comma, "space": Space, "detect": Detect}

// SetString sets the delimiter from its lower-case name.
func (dl *Delims) SetString(s string) error {
	d, ok := delimNames[strings.ToLower(s)]
	if !ok {
		return fmt.Errorf("table.Delims: %q is not one of tab, comma, space, detect", s)
	}
	*dl = d
	return nil
}

const (
	//	Headers is passed to CSV methods for the headers arg, to use headers
	// that capture full type and tensor shape information.
	Headers = true

	// NoHeaders is passed to CSV methods for the headers arg, to not use headers
	NoHeaders = false
)

// SaveCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// If headers = true then generate column headers that capture the type
// and tensor cell geometry of the columns, enabling full reloading
// of exactly the same table format and data (recommended).
// Otherwise, only the data is written.
func (dt *Table) SaveCSV(filename string, delim Delims, headers bool) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw, delim, headers)
	bw.Flush()
	return err
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the official CSV standard.
// The first row of the file is the headers, and columns are constructed therefrom.
// If the file was saved from table with headers, then these have full configuration
// information for tensor type and dimensionality, and otherwise
// the types are inferred from the values.
func (dt *Table) OpenCSV(filename string, delim Delims) error {
	fp, err := os.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// OpenFS is the version of [Table.OpenCSV] that uses an [fs.FS] filesystem.
func (dt *Table) OpenFS(fsys fs.FS, filename string, delim Delims) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// ReadCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// Any existing columns are deleted, and the first row is used as
// the headers. Values equal to "--" are masked, and the table
// is masked if any are present.
func (dt *Table) ReadCSV(r io.Reader, delim Delims) error {
	rec, err := readRecords(r, delim)
	if err != nil || len(rec) == 0 {
		return err
	}
	dt.Columns = NewColumns()
	dt.Masked = false
	if err := ConfigFromHeaders(dt, rec[0], rec); err != nil {
		return err
	}
	rows := len(rec) - 1
	dt.SetNumRows(rows)
	masked := false
	for ri := range rows {
		if dt.ReadCSVRow(rec[ri+1], ri) {
			masked = true
		}
	}
	if masked {
		dt.SetMasked(true)
	}
	return nil
}

// readRecords reads all the records, detecting the delimiter if needed.
func readRecords(r io.Reader, delim Delims) ([][]string, error) {
	if delim == Detect || delim == Space {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		str := string(data)
		if delim == Detect {
			delim = detectDelim(str)
		}
		if delim == Space {
			return splitFields(str), nil
		}
		r = strings.NewReader(str)
	}
	cr := csv.NewReader(r)
	cr.Comma = delim.Rune()
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// detectDelim returns the delimiter used in the first line.
func detectDelim(str string) Delims {
	line, _, _ := strings.Cut(str, "\n")
	switch {
	case strings.Contains(line, "\t"):
		return Tab
	case strings.Contains(line, ","):
		return Comma
	}
	return Space
}

// splitFields splits each non-blank line on runs of white space.
func splitFields(str string) [][]string {
	var rec [][]string
	for line := range strings.Lines(str) {
		flds := strings.Fields(line)
		if len(flds) == 0 {
			continue
		}
		rec = append(rec, flds)
	}
	return rec
}

// ReadLines reads a table from the given lines of white space
// separated values, the first of which are the headers.
// A line consisting only of dashes and spaces after the headers
// is skipped, so that the output of [Table.Lines] can be read back.
func ReadLines(lines ...string) (*Table, error) {
	if len(lines) > 1 && isRule(lines[1]) {
		lines = append([]string{lines[0]}, lines[2:]...)
	}
	dt := NewTable()
	err := dt.ReadCSV(strings.NewReader(strings.Join(lines, "\n")), Space)
	return dt, err
}

func isRule(line string) bool {
	line = strings.TrimSpace(line)
	return line != "" && strings.Trim(line, "- ") == ""
}

// ReadCSVRow reads a record of CSV data into given row in table,
// returning true if any value was masked.
func (dt *Table) ReadCSVRow(rec []string, row int) bool {
	ci := 0
	masked := false
	for _, col := range dt.Columns.Values {
		tsr := col.Values
		_, csz := tsr.RowCellSize()
		stoff := row * csz
		for cc := range csz {
			if ci >= len(rec) {
				return masked
			}
			str := strings.TrimSpace(rec[ci])
			if str == MaskedString {
				col.EnsureMask().Values[stoff+cc] = true
				masked = true
			} else {
				tsr.SetString1D(str, stoff+cc)
			}
			ci++
		}
	}
	return masked
}

// ConfigFromHeaders attempts to configure Table based on the headers.
// for non-table headers, data is examined to determine types.
func ConfigFromHeaders(dt *Table, hdrs []string, rec [][]string) error {
	if DetectTableHeaders(hdrs) {
		return ConfigFromTableHeaders(dt, hdrs)
	}
	return ConfigFromDataValues(dt, hdrs, rec)
}

// DetectTableHeaders looks for special header characters -- returns true if found
func DetectTableHeaders(hdrs []string) bool {
	for _, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			continue
		}
		if _, ok := TableHeaderToType[hd[0]]; !ok { // all must be table
			return false
		}
	}
	return true
}

// ConfigFromTableHeaders attempts to configure a Table based on special table headers
func ConfigFromTableHeaders(dt *Table, hdrs []string) error {
	for _, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			continue
		}
		typ, hd := TableColumnType(hd)
		dimst := strings.Index(hd, "]<")
		if dimst > 0 {
			dims := hd[dimst+2 : len(hd)-1]
			lbst := strings.Index(hd, "[")
			hd = hd[:lbst]
			csh, err := ShapeFromString(dims)
			if err != nil {
				return fmt.Errorf("table: column %q: %w", hd, err)
			}
			if _, err := dt.AddColumnOfType(hd, typ, csh...); err != nil {
				return err
			}
			continue
		}
		dimst = strings.Index(hd, "[")
		if dimst > 0 {
			continue
		}
		if _, err := dt.AddColumnOfType(hd, typ); err != nil {
			return err
		}
	}
	return nil
}

// TableHeaderToType maps special header characters to data type
var TableHeaderToType = map[byte]reflect.Kind{
	'$': reflect.String,
	'%': reflect.Float32,
	'#': reflect.Float64,
	'|': reflect.Int64,
	'^': reflect.Bool,
}

// TableHeaderChar returns the special header character based on given data type
func TableHeaderChar(typ reflect.Kind) byte {
	switch {
	case typ == reflect.Bool:
		return '^'
	case typ == reflect.Float32:
		return '%'
	case typ == reflect.Float64:
		return '#'
	case tensor.IsInteger(typ):
		return '|'
	default:
		return '$'
	}
}

// TableColumnType parses the column header for special table type information
func TableColumnType(nm string) (reflect.Kind, string) {
	typ, ok := TableHeaderToType[nm[0]]
	if ok {
		nm = nm[1:]
	} else {
		typ = reflect.String // most general, default
	}
	return typ, nm
}

// ShapeFromString parses string representation of shape as N:d,d,..
func ShapeFromString(dims string) ([]int, error) {
	nds, szs, ok := strings.Cut(dims, ":")
	if !ok {
		return nil, fmt.Errorf("invalid shape %q", dims)
	}
	nd, err := strconv.Atoi(nds)
	if err != nil {
		return nil, fmt.Errorf("invalid shape %q: %w", dims, err)
	}
	parts := strings.Split(szs, ",")
	if len(parts) != nd {
		return nil, fmt.Errorf("invalid shape %q: expected %d sizes", dims, nd)
	}
	sh := make([]int, nd)
	for i, p := range parts {
		d, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", dims, err)
		}
		sh[i] = d
	}
	return sh, nil
}

// ConfigFromDataValues configures a Table based on data types inferred
// from the string representation of given records, using header names if present.
// Masked and empty values do not contribute to the inferred type.
func ConfigFromDataValues(dt *Table, hdrs []string, rec [][]string) error {
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			hd = fmt.Sprintf("col_%d", ci)
		}
		typ := reflect.Invalid
		for ri := 1; ri < len(rec); ri++ {
			if ci >= len(rec[ri]) {
				continue
			}
			rv := strings.TrimSpace(rec[ri][ci])
			if rv == "" || rv == MaskedString {
				continue
			}
			ctyp := InferDataType(rv)
			if ctyp == reflect.String {
				typ = ctyp
				break
			}
			if typ == reflect.Invalid || (typ == reflect.Int64 && ctyp == reflect.Float64) {
				typ = ctyp
			}
		}
		if typ == reflect.Invalid {
			typ = reflect.String
		}
		if _, err := dt.AddColumnOfType(hd, typ); err != nil {
			return err
		}
	}
	return nil
}

// InferDataType returns the inferred data type for the given string
// only deals with float64, int64, and string types
func InferDataType(str string) reflect.Kind {
	if _, err := strconv.ParseInt(str, 10, 64); err == nil {
		return reflect.Int64
	}
	if _, err := strconv.ParseFloat(str, 64); err == nil {
		return reflect.Float64
	}
	return reflect.String
}

// WriteCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// If headers = true then generate column headers that capture the type
// and tensor cell geometry of the columns, enabling full reloading
// of exactly the same table format and data (recommended).
// Otherwise, only the data is written. Masked values are written as "--".
func (dt *Table) WriteCSV(w io.Writer, delim Delims, headers bool) error {
	if delim == Detect {
		delim = Comma
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if headers {
		if err := cw.Write(dt.TableHeaders()); err != nil {
			return err
		}
	}
	for ri := range dt.NumRows() {
		if err := dt.WriteCSVRowWriter(cw, ri); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVRowWriter uses csv.Writer to write one row
func (dt *Table) WriteCSVRowWriter(cw *csv.Writer, row int) error {
	prec := -1
	if ps, err := metadata.Get[int](&dt.Meta, "precision"); err == nil {
		prec = ps
	}
	var rec []string
	for _, col := range dt.Columns.Values {
		tsr := col.Values
		_, tc := tsr.RowCellSize()
		for ti := range tc {
			var vl string
			switch {
			case col.IsMasked(row, ti):
				vl = MaskedString
			case prec <= 0 || tsr.IsString() || !tensor.IsFloat(tsr.DataType()):
				vl = tsr.StringRowCell(row, ti)
			default:
				vl = strconv.FormatFloat(tsr.FloatRowCell(row, ti), 'g', prec, 64)
			}
			rec = append(rec, vl)
		}
	}
	return cw.Write(rec)
}

// TableHeaders generates special header strings from the table
// with full information about type and tensor cell dimensionality.
func (dt *Table) TableHeaders() []string {
	hdrs := []string{}
	for i, col := range dt.Columns.Values {
		tsr := col.Values
		nm := string([]byte{TableHeaderChar(tsr.DataType())}) + dt.Columns.Keys[i]
		if tsr.NumDims() == 1 {
			hdrs = append(hdrs, nm)
			continue
		}
		csh := tensor.NewShape(tsr.Shape().Sizes[1:]...) // cell shape
		tc := csh.Len()
		nd := csh.NumDims()
		fnm := nm + fmt.Sprintf("[%v:", nd)
		dn := fmt.Sprintf("<%v:", nd)
		ffnm := fnm
		for di := range nd {
			ffnm += "0"
			dn += fmt.Sprintf("%v", csh.DimSize(di))
			if di < nd-1 {
				ffnm += ","
				dn += ","
			}
		}
		ffnm += "]" + dn + ">"
		hdrs = append(hdrs, ffnm)
		for ti := 1; ti < tc; ti++ {
			idx := csh.Index(ti)
			ffnm := fnm
			for di := range nd {
				ffnm += fmt.Sprintf("%v", idx[di])
				if di < nd-1 {
					ffnm += ","
				}
			}
			ffnm += "]"
			hdrs = append(hdrs, ffnm)
		}
	}
	return hdrs
}
