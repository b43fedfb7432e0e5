package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bytedance/sonic"

	"github.com/schemascribe/backend/internal/infrastructure/config"
	"github.com/schemascribe/backend/internal/logging"
	"github.com/schemascribe/backend/internal/pipeline"
)

func main() {
	in := flag.String("in", "-", "HTML input file, or - for stdin")
	sourceURL := flag.String("url", "", "Source URL of the page (required)")
	pretty := flag.Bool("pretty", false, "Indent JSON output")
	full := flag.Bool("full", false, "Emit the full analysis report instead of just the JSON-LD schema")
	flag.Parse()

	if *sourceURL == "" {
		fmt.Fprintln(os.Stderr, "usage: schemagen -url <page-url> [-in file.html] [-pretty] [-full]")
		os.Exit(2)
	}

	rawHTML, err := readInput(*in)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	cfg := config.LoadOrDefault()
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	p := pipeline.New(cfg, logger)
	result, err := p.Run(string(rawHTML), *sourceURL)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	out, err := encode(result, *full, *pretty)
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}

	os.Stdout.Write(out)
	fmt.Println()
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func encode(result *pipeline.Result, full, pretty bool) ([]byte, error) {
	if !full {
		if !pretty {
			return result.SchemaJSON, nil
		}
		var tree map[string]any
		if err := sonic.Unmarshal(result.SchemaJSON, &tree); err != nil {
			return nil, err
		}
		return sonic.MarshalIndent(tree, "", "  ")
	}

	if pretty {
		return sonic.MarshalIndent(result, "", "  ")
	}
	return sonic.Marshal(result)
}
