package cli

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/khalid-nowaf/keytrie/pkg/keys"
	"github.com/khalid-nowaf/keytrie/pkg/trie"
)

type DumpCmd struct {
	Keys []string `arg:"" optional:"" help:"Keys to insert"`
	List bool     `help:"Print the inserted keys, one per line, instead of the tree"`
}

// Run executes the dump command.
func (cmd *DumpCmd) Run(ctx *Context) error {
	switch ctx.Mode {
	case "int":
		return dump(ctx, keys.Digits(), cmd)
	case "cidr":
		return dump(ctx, keys.CIDR(), cmd)
	default:
		return dump(ctx, keys.Dotted(ctx.Separator), cmd)
	}
}

type FindCmd struct {
	Queries []string `arg:"" help:"Keys to look up"`
	Format  string   `help:"Output format" enum:"text,json,csv,tsv" default:"text"`
}

// Run executes the find command.
func (cmd *FindCmd) Run(ctx *Context) error {
	switch ctx.Mode {
	case "int":
		return find(ctx, keys.Digits(), cmd.Queries, cmd.Format, false)
	case "cidr":
		return find(ctx, keys.CIDR(), cmd.Queries, cmd.Format, false)
	default:
		return find(ctx, keys.Dotted(ctx.Separator), cmd.Queries, cmd.Format, false)
	}
}

type ParentsCmd struct {
	Queries []string `arg:"" help:"Keys whose parents to print"`
	Format  string   `help:"Output format" enum:"text,json,csv,tsv" default:"text"`
}

// Run executes the parents command.
func (cmd *ParentsCmd) Run(ctx *Context) error {
	switch ctx.Mode {
	case "int":
		return find(ctx, keys.Digits(), cmd.Queries, cmd.Format, true)
	case "cidr":
		return find(ctx, keys.CIDR(), cmd.Queries, cmd.Format, true)
	default:
		return find(ctx, keys.Dotted(ctx.Separator), cmd.Queries, cmd.Format, true)
	}
}

func dump[T constraints.Ordered](ctx *Context, codec keys.Codec[T], cmd *DumpCmd) error {
	tr, err := buildTrie(ctx, codec, cmd.Keys)
	if err != nil {
		return err
	}

	if !cmd.List {
		_, err = fmt.Fprint(ctx.Out, tr.String())
		return err
	}
	for _, key := range tr.Keys() {
		if _, err := fmt.Fprintln(ctx.Out, codec.Format(key)); err != nil {
			return err
		}
	}
	return nil
}

func find[T constraints.Ordered](ctx *Context, codec keys.Codec[T], queries []string, format string, withParents bool) error {
	writer, err := newWriter(format)
	if err != nil {
		return err
	}
	tr, err := buildTrie(ctx, codec, nil)
	if err != nil {
		return err
	}

	results := make([]QueryResult, 0, len(queries))
	for _, raw := range queries {
		result, err := lookup(tr, codec, raw, withParents)
		if err != nil {
			return err
		}
		results = append(results, result)
	}
	return writer.Write(ctx.Out, results)
}

// lookup resolves one query, following FindParent until End when withParents is set.
func lookup[T constraints.Ordered](tr *trie.Trie[T], codec keys.Codec[T], raw string, withParents bool) (QueryResult, error) {
	result := QueryResult{Query: raw}

	key, err := codec.Parse(raw)
	if err != nil {
		return result, fmt.Errorf("query: %w", err)
	}

	it := tr.Find(key)
	if it.Equal(tr.End()) {
		return result, nil
	}
	result.Found = true
	result.Key = codec.Format(it.Value())

	if withParents {
		for parent := tr.FindParent(it); !parent.IsEnd(); parent = tr.FindParent(parent) {
			result.Parents = append(result.Parents, codec.Format(parent.Value()))
		}
	}
	return result, nil
}

// buildTrie inserts the keys of --from files, --insert flags and args, in that order.
func buildTrie[T constraints.Ordered](ctx *Context, codec keys.Codec[T], args []string) (*trie.Trie[T], error) {
	tr := codec.NewTrie(trie.WithLogger[T](ctx.Logger))

	insert := func(raw string) error {
		key, err := codec.Parse(raw)
		if err != nil {
			return err
		}
		tr.Insert(key)
		return nil
	}

	for _, file := range ctx.From {
		if err := parseFile(file, ctx.Column, insert); err != nil {
			return nil, fmt.Errorf("load keys: %w", err)
		}
	}
	for _, raw := range append(append([]string{}, ctx.Insert...), args...) {
		if err := insert(raw); err != nil {
			return nil, fmt.Errorf("insert: %w", err)
		}
	}

	ctx.Logger.Info("trie built", "mode", codec.Name, "keys", tr.Len())
	return tr, nil
}
