package gridio

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/gridif/model"
)

var branchTypeTags = map[string]model.BranchType{
	"Line":        model.Line,
	"Coupler":     model.Coupler,
	"Transformer": model.Transformer,
	"Transformer2W": model.Transformer2W,
}

// ParseCSV reads the CSV dialect: a header-led branches file and a
// header-led generators file. minVoltageKV, if positive, drops any branch
// whose v_base falls below it — the parser-side filter spec.md §6
// reserves for this dialect only.
//
// branches.csv columns: from,to,order,display_name,impedance,iatl,patl,v_base,type
// generators.csv columns: node_name,display_name,power
func ParseCSV(branchesPath, generatorsPath string, minVoltageKV float64) (*RawGrid, error) {
	branches, err := parseBranchesCSV(branchesPath, minVoltageKV)
	if err != nil {
		return nil, ioErrorf("ParseCSV", err)
	}
	generators, err := parseGeneratorsCSV(generatorsPath)
	if err != nil {
		return nil, ioErrorf("ParseCSV", err)
	}
	return &RawGrid{Branches: branches, Generators: generators}, nil
}

func openCSV(path string) (*csv.Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, ErrInputMissing
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r, f, nil
}

func parseBranchesCSV(path string, minVoltageKV float64) ([]BranchRecord, error) {
	r, f, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := r.Read(); err != nil { // header
		return nil, err
	}

	var out []BranchRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(row) < 9 {
			continue // MalformedRecord: skip
		}

		impedance, e1 := strconv.ParseFloat(row[4], 64)
		iatl, _ := strconv.ParseFloat(row[5], 64)
		patl, _ := strconv.ParseFloat(row[6], 64)
		vBase, e2 := strconv.ParseFloat(row[7], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		if minVoltageKV > 0 && vBase < minVoltageKV {
			continue
		}
		branchType, ok := branchTypeTags[row[8]]
		if !ok {
			continue
		}

		out = append(out, BranchRecord{
			From: row[0], To: row[1], Order: row[2], DisplayName: row[3],
			Impedance: impedance, IATL: iatl, PATL: patl, VBase: vBase, Type: branchType,
		})
	}
	return out, nil
}

func parseGeneratorsCSV(path string) ([]GeneratorRecord, error) {
	r, f, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := r.Read(); err != nil {
		return nil, err
	}

	var out []GeneratorRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(row) < 3 {
			continue
		}
		power, perr := strconv.ParseFloat(row[2], 64)
		if perr != nil {
			continue
		}
		out = append(out, GeneratorRecord{NodeName: row[0], DisplayName: row[1], Power: power})
	}
	return out, nil
}
