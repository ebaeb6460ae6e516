package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/tidwall/jsonc"

	"github.com/mcncl/arenajson/internal/arena"
	"github.com/mcncl/arenajson/internal/config"
	"github.com/mcncl/arenajson/internal/errors"
	"github.com/mcncl/arenajson/internal/models"
	"github.com/mcncl/arenajson/internal/parser"
	"github.com/mcncl/arenajson/internal/printer"
)

// CLI defines the command-line interface
var CLI struct {
	Input    string `help:"Path to input JSON file." short:"i" type:"path"`
	Key      string `help:"Top-level object key whose array elements are printed." short:"k"`
	Capacity int    `help:"Arena capacity in bytes." placeholder:"BYTES"`
	MaxDepth int    `help:"Maximum array/object nesting depth." placeholder:"N"`
	JSONC    bool   `help:"Strip JSONC comments and trailing commas before parsing." name:"jsonc"`
	Config   string `help:"Path to config file. Defaults to the nearest .arenajson.yml." short:"c" type:"path"`
	Debug    bool   `help:"Enable debug output." short:"d"`
	Version  bool   `help:"Show version information." short:"v"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	k := kong.Must(&CLI,
		kong.Name("arenajson"),
		kong.Description("Parse a JSON document into an arena-backed tree and print the elements of one array-valued key"),
		kong.UsageOnError(),
	)

	if _, err := k.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("arenajson version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := run(&Context{Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: defaults, then the
// config file (explicit path or nearest .arenajson.yml), then CLI flags.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()

	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, errors.NewInputError(fmt.Sprintf("failed to load config '%s'", path), err)
		}
		cfg = loaded
	}

	cfg.MergeCLI(CLI.Input, CLI.Key, CLI.Capacity, CLI.MaxDepth, CLI.JSONC, CLI.Debug)
	return cfg, nil
}

// run executes the main program logic: read the whole file, parse one
// top-level value, require an object holding an array under the
// configured key, and print each element as JSON followed by a newline.
func run(ctx *Context) error {
	cfg := ctx.Config

	data, err := readInput(cfg)
	if err != nil {
		return err
	}

	a := arena.New(cfg.Capacity)
	value, err := parser.ParseBytes(data, a, parser.WithMaxDepth(cfg.MaxDepth))
	if err != nil {
		return errors.NewParseError(fmt.Sprintf("failed to parse '%s'", cfg.Input), err)
	}

	if cfg.Debug {
		fmt.Fprintf(os.Stderr, "parsed %s: arena %d/%d bytes\n", cfg.Input, a.Len(), a.Cap())
	}

	items, err := lookupArray(&value, cfg.Key)
	if err != nil {
		return err
	}

	return printItems(items)
}

// readInput reads the entire input file into memory, optionally passing
// it through the JSONC translator first.
func readInput(cfg *config.Config) ([]byte, error) {
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", cfg.Input),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", cfg.Input),
			err,
		)
	}
	if len(data) == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", cfg.Input),
			errors.ErrFileEmpty,
		)
	}
	if cfg.JSONC {
		data = jsonc.ToJSON(data)
	}
	return data, nil
}

// lookupArray requires the top-level value to be an object and the
// configured key to hold an array.
func lookupArray(value *models.Value, key string) (*models.Array, error) {
	obj, ok := value.AsObject()
	if !ok {
		return nil, errors.NewLookupError(
			fmt.Sprintf("top-level value is a %s, not an object", value.Kind()),
			errors.ErrNotAnObject,
		)
	}

	item, found := obj.Find(key)
	if !found {
		return nil, errors.NewLookupError(
			fmt.Sprintf("key '%s' not found in top-level object", key),
			errors.ErrKeyNotFound,
		)
	}

	arr, ok := item.AsArray()
	if !ok {
		return nil, errors.NewLookupError(
			fmt.Sprintf("value under '%s' is a %s, not an array", key, item.Kind()),
			errors.ErrNotAnArray,
		)
	}
	return arr, nil
}

// printItems renders each array element as JSON on its own line.
func printItems(items *models.Array) error {
	w := bufio.NewWriter(os.Stdout)
	p := printer.New(w)

	for node := items.Head(); node != nil; node = node.Next() {
		if err := p.Print(&node.Value); err != nil {
			return errors.NewOutputError("failed to write element", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return errors.NewOutputError("failed to write element", err)
		}
	}

	if err := w.Flush(); err != nil {
		return errors.NewOutputError("failed to flush output", err)
	}
	return nil
}
