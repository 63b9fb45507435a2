// Package main provides the entry point for scanlex, a token dumper built on
// the configurable scanner.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/scanlex/scanlex/internal/cli"
	"github.com/scanlex/scanlex/internal/langdef"
	"github.com/scanlex/scanlex/internal/scanner"
	"github.com/scanlex/scanlex/internal/watch"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		showHelp    = flag.Bool("help", false, "show help information")
		langName    = flag.String("lang", "lua", "built-in language definition to scan with")
		configPath  = flag.String("config", "", "language definition file (JSON), overrides --lang")
		jsonOut     = flag.Bool("json", false, "emit tokens as JSON instead of the dump format")
		watchMode   = flag.Bool("watch", false, "watch the input file and rescan on every write")
	)

	flag.Parse()

	if *showVersion {
		cli.PrintVersion("scanlex", *jsonOut)
		return
	}

	if *showHelp {
		showUsage()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("Error: No input file specified")
		showUsage()
		os.Exit(1)
	}

	cfg, err := resolveConfig(*configPath, *langName)
	if err != nil {
		cli.ExitWithError("%v", err)
	}

	inputFile := args[0]
	if *watchMode {
		runWatch(inputFile, cfg)
		return
	}
	if err := scanFile(inputFile, cfg, *jsonOut); err != nil {
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Println("scanlex - configurable lexical scanner")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("    scanlex [OPTIONS] <INPUT_FILE>")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("    --version        Show version information")
	fmt.Println("    --help           Show this help message")
	fmt.Println("    --lang NAME      Built-in language definition (default: lua)")
	fmt.Println("    --config FILE    Language definition file (JSON), overrides --lang")
	fmt.Println("    --json           Emit tokens as JSON")
	fmt.Println("    --watch          Rescan the input file on every write")
	fmt.Println()
	fmt.Println("Input files ending in .gz are decompressed transparently.")
	fmt.Println("On a scan error the tokens recognized before the failure are")
	fmt.Println("still printed, followed by the error location.")
}

func resolveConfig(configPath, langName string) (*scanner.Config, error) {
	if configPath != "" {
		return langdef.Load(configPath, cli.Version)
	}
	switch langName {
	case "lua":
		return langdef.Lua(), nil
	default:
		return nil, fmt.Errorf("unknown built-in language %q", langName)
	}
}

// scanFile scans one file and prints the result. Partial output is printed
// even when the scan fails, so incomplete buffers still show their tokens.
func scanFile(path string, cfg *scanner.Config, jsonOut bool) error {
	source, err := readSource(path)
	if err != nil {
		cli.ExitWithError("%v", err)
	}

	data := &scanner.ScanData{}
	var sc scanner.Scanner
	scanErr := sc.Run(source, cfg, data)

	if jsonOut {
		if err := writeJSON(os.Stdout, data); err != nil {
			cli.ExitWithError("%v", err)
		}
	} else {
		data.Dump(os.Stdout)
	}
	if scanErr != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, scanErr)
	}
	return scanErr
}

func runWatch(path string, cfg *scanner.Config) {
	w, err := watch.New(cfg)
	if err != nil {
		cli.ExitWithError("%v", err)
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		cli.ExitWithError("%v", err)
	}

	// Scan once up front so the first output doesn't wait for an edit.
	scanFile(path, cfg, false)
	log.Printf("watching %s", path)

	for {
		select {
		case res := <-w.Results():
			if res.Data != nil {
				res.Data.Dump(os.Stdout)
			}
			if res.Err != nil {
				log.Printf("%s: %v", res.Path, res.Err)
			} else {
				log.Printf("%s: %d tokens", res.Path, res.Data.Len())
			}
		case err := <-w.Errors():
			log.Printf("watch error: %v", err)
		}
	}
}

// readSource reads the input file, decompressing gzip files transparently.
func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("failed to read gzip input: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(b), nil
}

type jsonToken struct {
	Kind   string  `json:"kind"`
	Text   string  `json:"text"`
	Value  float64 `json:"value,omitempty"`
	Start  int     `json:"start"`
	Length int     `json:"length"`
	Line   int     `json:"line"`
}

func writeJSON(w io.Writer, data *scanner.ScanData) error {
	toks := make([]jsonToken, 0, data.Len())
	for i, tok := range data.Tokens {
		toks = append(toks, jsonToken{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Value:  tok.Value,
			Start:  data.Starts[i],
			Length: data.Lengths[i],
			Line:   data.Lines[i],
		})
	}
	b, err := json.MarshalIndent(toks, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
