// salon-report runs the analytics pipeline over a local CSV/JSON file
// without the API server: parse, compute, print or export.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"salon-analytics/internal/model"
	"salon-analytics/internal/pipeline"
)

func main() {
	var (
		file      = flag.String("file", "", "path to a .csv or .json data file")
		format    = flag.String("format", "", "write the report as csv, json or xlsx instead of printing")
		outDir    = flag.String("out", "output", "directory for exported reports")
		dateOrder = flag.String("date-order", "", "day-first or month-first hint for ambiguous dates")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: salon-report -file=data.csv [-format=xlsx] [-out=output]")
		os.Exit(2)
	}
	pipeline.SetDateOrder(*dateOrder)

	content, err := os.ReadFile(*file)
	if err != nil {
		fatal("could not read %s: %v", *file, err)
	}

	var records []model.Record
	switch strings.ToLower(filepath.Ext(*file)) {
	case ".csv":
		records, err = pipeline.ParseCSV(string(content))
	case ".json":
		records, err = pipeline.ParseJSON(content)
	default:
		fatal("unsupported file format: %s", *file)
	}
	if err != nil {
		fatal("file could not be processed: %v", err)
	}

	result, err := pipeline.Process(records, nil)
	if err != nil {
		fatal("%v", err)
	}

	if *format == "" {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fatal("could not encode result: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	name := strings.TrimSuffix(filepath.Base(*file), filepath.Ext(*file))
	exported, err := pipeline.NewExporter(*outDir).Export(name, result, *format)
	if err != nil {
		fatal("export failed: %v", err)
	}
	fmt.Printf("report written to %s\n", exported.Path)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
