package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/textgraph/augment"
	"github.com/katalvlaran/textgraph/bfs"
	"github.com/katalvlaran/textgraph/bridge"
	"github.com/katalvlaran/textgraph/core"
	"github.com/katalvlaran/textgraph/dfs"
	"github.com/katalvlaran/textgraph/dijkstra"
	"github.com/katalvlaran/textgraph/dot"
	"github.com/katalvlaran/textgraph/internal/server"
	"github.com/katalvlaran/textgraph/internal/watch"
	"github.com/katalvlaran/textgraph/pagerank"
	"github.com/katalvlaran/textgraph/walk"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print every word and its successors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0])
			if err != nil {
				return err
			}
			return writeAdjacency(cmd.OutOrStdout(), g)
		},
	}
}

// writeAdjacency prints the node count and, for each word with successors in
// alphabetical order, "word -> x (weight: 1), y (weight: 2)".
func writeAdjacency(w io.Writer, g *core.Graph) error {
	if _, err := fmt.Fprintf(w, "===== Directed Graph =====\nTotal words (nodes): %d\n\n", g.Len()); err != nil {
		return err
	}
	for _, word := range g.SortedWords() {
		ns := g.Neighbors(word)
		if len(ns) == 0 {
			continue
		}
		parts := make([]string, len(ns))
		for i, n := range ns {
			parts[i] = n.Word + " (weight: " + strconv.FormatInt(n.Weight, 10) + ")"
		}
		if _, err := fmt.Fprintf(w, "%s -> %s\n", word, strings.Join(parts, ", ")); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize the graph: size, dead ends and cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0])
			if err != nil {
				return err
			}
			return writeStats(cmd.OutOrStdout(), g)
		},
	}
}

// writeStats prints counts, dead-end words, and either a topological order
// (acyclic text) or the back-edge cycles.
func writeStats(w io.Writer, g *core.Graph) error {
	var observations int64
	for _, e := range g.Edges() {
		observations += e.Weight
	}
	var deadEnds []string
	for _, word := range g.SortedWords() {
		if len(g.Neighbors(word)) == 0 {
			deadEnds = append(deadEnds, word)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Words: %d\n", g.Len())
	fmt.Fprintf(&sb, "Edges: %d (%d observations)\n", g.EdgeCount(), observations)
	fmt.Fprintf(&sb, "Dead ends: %d", len(deadEnds))
	if len(deadEnds) > 0 {
		sb.WriteString(" (" + strings.Join(deadEnds, ", ") + ")")
	}
	sb.WriteString("\n")

	if order, err := dfs.TopologicalSort(g); err == nil {
		sb.WriteString("Acyclic: yes\nOrder: " + strings.Join(order, " ") + "\n")
	} else {
		cycles := dfs.FindCycles(g)
		fmt.Fprintf(&sb, "Acyclic: no (%d cycles)\n", len(cycles))
		for _, c := range cycles {
			sb.WriteString("  " + strings.Join(c, " -> ") + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (a *app) bridgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bridge <file> <word1> <word2>",
		Short: "List the bridge words between two words",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), bridge.Query(g, args[1], args[2]))
			return err
		},
	}
}

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <file> <text...>",
		Short: "Insert bridge words into a new text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0])
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), augment.Augment(g, text, a.random()))
			return err
		},
	}
}

func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <file> <word1> [word2]",
		Short: "Shortest path between two words, or from one word to all others",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 3 {
				p, err := dijkstra.ShortestPath(g, args[1], args[2])
				_, werr := fmt.Fprintln(out, dijkstra.Describe(args[1], args[2], p, err))
				return werr
			}

			outcomes, err := dijkstra.AllFrom(g, args[1])
			if err != nil {
				_, werr := fmt.Fprintln(out, dijkstra.Describe(args[1], "", nil, err))
				return werr
			}
			for _, o := range outcomes {
				if _, err := fmt.Fprintf(out, "%s\n\n", o); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) rankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank <file> [word]",
		Short: "PageRank of one word, or of every word in descending order",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0])
			if err != nil {
				return err
			}
			res, err := pagerank.Compute(cmd.Context(), g, a.cfg.PageRankOptions()...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 2 {
				word := core.Normalize(args[1])
				score, ok := res.Scores[word]
				if !ok {
					score = pagerank.NotFound
				}
				_, err = fmt.Fprintln(out, pagerank.Describe(word, score))
				return err
			}
			for _, r := range res.Ranked() {
				if _, err := fmt.Fprintln(out, r); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) walkCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "walk <file>",
		Short: "Random walk until a dead end or a repeated edge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0])
			if err != nil {
				return err
			}
			res, err := walk.Walk(g, a.random())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, res); err != nil {
				return err
			}
			if outPath == "" {
				return nil
			}
			if err := res.Save(outPath); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "Saved to %s\n", outPath)
			return err
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "also write the walk to this file")

	return cmd
}

func (a *app) reachCmd() *cobra.Command {
	var (
		depth     int
		minWeight int64
	)
	cmd := &cobra.Command{
		Use:   "reach <file> <word>",
		Short: "Words reachable from a word, grouped by distance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0])
			if err != nil {
				return err
			}
			opts := []bfs.Option{bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(depth)}
			if minWeight > 1 {
				opts = append(opts, bfs.WithMinWeight(minWeight))
			}
			res, err := bfs.BFS(g, args[1], opts...)
			out := cmd.OutOrStdout()
			var mw *core.MissingWordsError
			if errors.As(err, &mw) {
				_, werr := fmt.Fprintln(out, mw.Message())
				return werr
			}
			if err != nil {
				return err
			}
			for d, layer := range res.Layers() {
				if _, err := fmt.Fprintf(out, "%d: %s\n", d, strings.Join(layer, " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "stop after this many hops; 0 means unlimited")
	cmd.Flags().Int64Var(&minWeight, "min-weight", 1, "ignore edges observed fewer times than this")

	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var (
		format  string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the graph as DOT, an edge list, or a Graphviz image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Render.Format
			}
			f, err := dot.ParseFormat(format)
			if err != nil {
				return err
			}
			g, err := load(args[0])
			if err != nil {
				return err
			}

			r := a.cfg.Renderer()
			opts := dot.DefaultOptions()
			if outPath == "" {
				return r.Export(cmd.Context(), g, cmd.OutOrStdout(), f, opts)
			}
			if err := r.SaveFile(cmd.Context(), g, outPath, f, opts); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", outPath)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(dot.FormatDOT), "dot|edges|svg|png|pdf")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file; stdout when empty")

	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var (
		addr    string
		watchIt bool
	)
	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve the graph over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("watch") {
				a.cfg.Server.Watch = watchIt
			}
			g, err := load(args[0])
			if err != nil {
				return err
			}
			srv, err := server.New(g, server.Options{
				Seed:      a.cfg.Random.Seed,
				PageRank:  a.cfg.PageRankOptions(),
				DOT:       dot.DefaultOptions(),
				RateLimit: a.cfg.Server.RateLimit,
				Burst:     a.cfg.Server.Burst,
			})
			if err != nil {
				return err
			}

			eg, ctx := errgroup.WithContext(cmd.Context())
			if a.cfg.Server.Watch {
				w, err := watch.New(args[0], a.cfg.Server.Debounce, func(g *core.Graph) {
					_ = srv.Swap(g)
				})
				if err != nil {
					return err
				}
				eg.Go(func() error { return w.Run(ctx) })
			}
			eg.Go(func() error { return srv.Run(ctx, a.cfg.Server.Addr) })

			return eg.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&watchIt, "watch", false, "rebuild the graph when the file changes")

	return cmd
}
