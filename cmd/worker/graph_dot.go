package main

import (
	"io"
	"os"

	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/export"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/ingest/parser"
)

func writeDOT(w io.Writer, inPath, outPath, title string) error {
	p, err := parser.ParseFile(inPath)
	if err != nil {
		return err
	}
	dot := export.ToDOT(p, title)
	if outPath == "" {
		_, err = io.WriteString(w, dot)
		return err
	}
	return os.WriteFile(outPath, []byte(dot), 0o644)
}
