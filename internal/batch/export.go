package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Exported units differ from the internal N-mm system: areas in cm^2,
// second moments in cm^4, moments in kN-m, forces in kN. Conversion
// happens here only.

func (s *Scenario) geometryColumns() []string {
	if s.Shape == "t" {
		return []string{"web_width", "flange_width", "flange_depth"}
	}
	return []string{"width"}
}

// Header returns the exported column names for this scenario's mode.
func (s *Scenario) Header() []string {
	cols := []string{"shape", "mode", "fck", "grade"}
	cols = append(cols, s.geometryColumns()...)
	cols = append(cols, "height", "cover", "stirrup_dia", "rebar_dia",
		"fy", "d", "ag", "ig", "sm")

	switch s.Mode {
	case ModeDesign:
		cols = append(cols, "mu", "pu",
			"as_required", "as_min", "as_max",
			"phi", "net_tensile_strain", "is_min_controlled")
	case ModeAnalysis:
		cols = append(cols, "as_min", "as_max", "step", "as_provided", "rho",
			"phi", "phi_mn", "net_tensile_strain",
			"is_ok", "strength_ok", "ductility_ok", "min_rebar_ok")
	case ModeCheck:
		cols = append(cols, "mu", "pu",
			"as_min", "as_max", "as_provided", "rho",
			"phi", "phi_mn", "net_tensile_strain",
			"is_ok", "strength_ok", "ductility_ok", "min_rebar_ok")
	}

	return append(cols, "status", "message")
}

// values returns the exported cell values for one row, aligned with Header.
func (s *Scenario) values(r Row) []any {
	vals := []any{r.Shape, string(r.Mode), r.Fck, r.Grade}
	if s.Shape == "t" {
		vals = append(vals, r.WebWidth, r.FlangeWidth, r.FlangeDepth)
	} else {
		vals = append(vals, r.Width)
	}
	vals = append(vals, r.Height, r.Cover, r.StirrupDia, r.RebarDia,
		r.Fy, r.D, r.Ag/1e2, r.Ig/1e4, r.Sm/1e2)

	switch s.Mode {
	case ModeDesign:
		vals = append(vals, r.Mu/1e6, r.Pu/1e3,
			r.AsRequired/1e2, r.AsMin/1e2, r.AsMax/1e2,
			r.Phi, r.NetTensileStrain, r.IsMinControlled)
	case ModeAnalysis:
		vals = append(vals, r.AsMin/1e2, r.AsMax/1e2, r.Step, r.AsProv/1e2, r.Rho,
			r.Phi, r.PhiMn/1e6, r.NetTensileStrain,
			r.IsOK, r.StrengthOK, r.DuctilityOK, r.MinRebarOK)
	case ModeCheck:
		vals = append(vals, r.Mu/1e6, r.Pu/1e3,
			r.AsMin/1e2, r.AsMax/1e2, r.AsProv/1e2, r.Rho,
			r.Phi, r.PhiMn/1e6, r.NetTensileStrain,
			r.IsOK, r.StrengthOK, r.DuctilityOK, r.MinRebarOK)
	}

	return append(vals, r.Status, r.Message)
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'g', 10, 64)
	default:
		return fmt.Sprint(t)
	}
}

// WriteCSV writes all rows of the runner to a CSV file.
func (r *Runner) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(r.scenario.Header()); err != nil {
		return err
	}
	for _, row := range r.rows {
		record := make([]string, 0, len(r.scenario.Header()))
		for _, v := range r.scenario.values(row) {
			record = append(record, formatValue(v))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteXLSX writes all rows of the runner to an Excel workbook.
func (r *Runner) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	for col, name := range r.scenario.Header() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	for i, row := range r.rows {
		for col, v := range r.scenario.values(row) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
