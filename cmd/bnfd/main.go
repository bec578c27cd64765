// Command bnfd parses BNF grammars, either one-shot from the command line
// or as an HTTP service with a small interactive UI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/grammarkit/bnf"
	"github.com/grammarkit/bnf/internal/logging"
	"github.com/grammarkit/bnf/internal/web"
)

const version = "0.1.0"

// CLI defines the command-line interface for bnfd.
var CLI struct {
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	LogFormat string `name:"log-format" default:"text" enum:"json,text" help:"Log format (json, text)."`

	Serve   ServeCmd   `cmd:"" help:"Start the grammar-parsing HTTP server."`
	Parse   ParseCmd   `cmd:"" help:"Parse a grammar file and print the result."`
	Fmt     FmtCmd     `cmd:"" help:"Rewrite a grammar file in canonical form."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

// ServeCmd starts the HTTP server.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address."`
}

func (c *ServeCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.New(web.Config{Addr: c.Addr})
	return server.ListenAndServe(ctx)
}

// ParseCmd parses a single grammar file.
type ParseCmd struct {
	File   string `arg:"" type:"existingfile" help:"Grammar file to parse."`
	Format string `default:"text" enum:"text,json,repr" help:"Output format (text, json, repr)."`
}

func (c *ParseCmd) Run() error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	grammar, err := bnf.ParseString(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}
	switch c.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(grammar)
	case "repr":
		repr.Println(grammar)
	default:
		fmt.Println(grammar)
	}
	return nil
}

// FmtCmd re-emits a grammar in canonical textual form.
type FmtCmd struct {
	File  string `arg:"" type:"existingfile" help:"Grammar file to format."`
	Write bool   `short:"w" help:"Write the result back to the file instead of stdout."`
}

func (c *FmtCmd) Run() error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	grammar, err := bnf.ParseString(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}
	out := grammar.String() + "\n"
	if c.Write {
		return os.WriteFile(c.File, []byte(out), 0o644)
	}
	fmt.Print(out)
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println("bnfd", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bnfd"),
		kong.Description("BNF grammar parser and web service."),
		kong.UsageOnError(),
	)
	logging.Init(CLI.LogLevel, CLI.LogFormat)
	ctx.FatalIfErrorf(ctx.Run())
}
