package loader

import (
	"fmt"
	"os"
	"path/filepath"

	roaring "github.com/RoaringBitmap/roaring/v2"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/knapsack-lab/subknap/objective"
)

// readJSON reads a fixture file and parses it as a top-level JSON array.
func readJSON(dir, name string) (gjson.Result, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %s: %v", ErrDataFile, path, err)
	}
	r := gjson.ParseBytes(data)
	if !r.IsArray() {
		return gjson.Result{}, fmt.Errorf("%w: %s: not a JSON array", ErrDataFile, path)
	}
	return r, nil
}

func floatsFrom(r gjson.Result) []float64 {
	arr := r.Array()
	out := make([]float64, len(arr))
	for i, v := range arr {
		out[i] = v.Float()
	}
	return out
}

// intsFrom truncates each element toward zero, matching the C++ source's
// implicit double-to-int cast when reading weight tables.
func intsFrom(r gjson.Result) []int {
	arr := r.Array()
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v.Float())
	}
	return out
}

func intMatrixFrom(r gjson.Result) [][]int {
	rows := r.Array()
	out := make([][]int, len(rows))
	for i, row := range rows {
		out[i] = intsFrom(row)
	}
	return out
}

func floatMatrixFrom(r gjson.Result) [][]float64 {
	rows := r.Array()
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = floatsFrom(row)
	}
	return out
}

// LoadCOV reads the coverage objective's fixtures from dir.
func LoadCOV(dir string) ([]int, *objective.COV, error) {
	var values, weights, items gjson.Result
	g := new(errgroup.Group)
	g.Go(func() (err error) { values, err = readJSON(dir, "COV_Groundsetvalues.json"); return })
	g.Go(func() (err error) { items, err = readJSON(dir, "COV_Items.json"); return })
	g.Go(func() (err error) { weights, err = readJSON(dir, "COV_Itemsweights.json"); return })
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	districts := make([]*roaring.Bitmap, 0, len(items.Array()))
	for _, row := range items.Array() {
		b := roaring.New()
		for _, d := range row.Array() {
			b.Add(uint32(d.Int()))
		}
		districts = append(districts, b)
	}

	obj := objective.NewCOV(floatsFrom(values), districts)
	return intsFrom(weights), obj, nil
}

// LoadLOC reads the facility-location objective's fixtures from dir.
func LoadLOC(dir string) ([]int, *objective.LOC, error) {
	var benefits, weights gjson.Result
	g := new(errgroup.Group)
	g.Go(func() (err error) { benefits, err = readJSON(dir, "LOC_benefits.json"); return })
	g.Go(func() (err error) { weights, err = readJSON(dir, "LOC_weights.json"); return })
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	obj, err := objective.NewLOC(floatMatrixFrom(benefits))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: LOC_benefits.json: %v", ErrDataFile, err)
	}
	return intsFrom(weights), obj, nil
}

// LoadINF reads the influence objective's fixtures from dir.
func LoadINF(dir string) ([]int, *objective.INF, error) {
	var connections, weights, probability gjson.Result
	g := new(errgroup.Group)
	g.Go(func() (err error) { connections, err = readJSON(dir, "INF_connections.json"); return })
	g.Go(func() (err error) { weights, err = readJSON(dir, "INF_weights.json"); return })
	g.Go(func() (err error) { probability, err = readJSON(dir, "INF_probability.json"); return })
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	obj, err := objective.NewINF(floatsFrom(probability), intMatrixFrom(connections))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: INF_connections.json: %v", ErrDataFile, err)
	}
	return intsFrom(weights), obj, nil
}
