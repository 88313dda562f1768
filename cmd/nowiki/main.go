package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/moinwiki/nowiki"
	"github.com/moinwiki/nowiki/internal/cli"
	"github.com/moinwiki/nowiki/internal/transformer"
)

func main() {
	var inPath string
	var compact bool
	var noBackup bool
	var stdout bool
	var debug bool
	flag.StringVar(&inPath, "in", "", "Input .moin file or directory")
	flag.BoolVar(&compact, "compact", false, "Write compact JSON instead of indented")
	flag.BoolVar(&noBackup, "no-backup", false, "Do not back up existing output files")
	flag.BoolVar(&stdout, "stdout", false, "Write the expanded tree to stdout instead of a file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if inPath == "" {
		fmt.Println("Please provide an input file or directory with -in")
		os.Exit(1)
	}

	mode := nowiki.ModePretty
	if compact {
		mode = nowiki.ModeCompact
	}
	opts := transformer.TransformOptions{
		WriterMode: mode,
		NoBackup:   noBackup,
	}

	if stdout {
		f, err := os.Open(inPath)
		if err != nil {
			fmt.Printf("Error opening file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		t := transformer.NewTransformer(opts)
		err = t.TransformTo(transformer.WikiSource{
			Content:  f,
			Metadata: nowiki.MetaData{Source: inPath},
		}, os.Stdout)
		if err != nil {
			fmt.Printf("Error expanding document: %v\n", err)
			os.Exit(1)
		}
		return
	}

	processor := cli.NewProcessor(opts)
	results, err := processor.ProcessPath(inPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, result := range results {
		fmt.Printf("Expanded %s to %s\n", result.Path, result.OutPath)
	}
}
