package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
)

// Globals are the flags shared by every command.
type Globals struct {
	Mode      string   `help:"Key type: int (decimal digits), dotted (separator delimited) or cidr (network bits)" enum:"int,dotted,cidr" default:"dotted" env:"KEYTRIE_MODE" short:"m"`
	Separator string   `help:"Sub-key separator for dotted keys" default:"." env:"KEYTRIE_SEPARATOR"`
	From      []string `help:"Files with keys to insert (CSV, TSV, JSON or plain text)" type:"existingfile" short:"f"`
	Column    string   `help:"Column holding the key in CSV, TSV and JSON files" default:"key"`
	Insert    []string `help:"Key to insert, can be repeated" short:"i" sep:"none"`
	Verbose   bool     `help:"Log trie operations to stderr" short:"v"`
}

// CLI is the keytrie command tree.
type CLI struct {
	Globals

	Dump    DumpCmd    `cmd:"" help:"Insert keys and print the trie"`
	Find    FindCmd    `cmd:"" help:"Insert keys and look up queries"`
	Parents ParentsCmd `cmd:"" help:"Insert keys and print the chain of inserted parents of each query"`
}

// Context is bound to every command's Run method.
type Context struct {
	*Globals
	Out    io.Writer
	Logger *slog.Logger
}

// Run parses args and executes the selected command, writing results to out
// and logs and usage errors to errOut.
func Run(args []string, out io.Writer, errOut io.Writer) error {
	var root CLI
	parser, err := kong.New(&root,
		kong.Name("keytrie"),
		kong.Description("Build a trie from keys and query it."),
		kong.UsageOnError(),
		kong.Writers(out, errOut),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}

	return ctx.Run(&Context{
		Globals: &root.Globals,
		Out:     out,
		Logger:  newLogger(errOut, root.Verbose),
	})
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
