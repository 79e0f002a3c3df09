package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoclib/gridgraph"
	"github.com/katalvlaran/aoclib/point"
)

// readLines returns the non-empty lines of path with CR/LF stripped.
func readLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, l := range strings.Split(string(b), "\n") {
		if l = strings.TrimRight(l, "\r"); l != "" {
			lines = append(lines, l)
		}
	}

	return lines, nil
}

func (a *app) pathCmd() *cobra.Command {
	var show, regions bool
	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Shortest path from the start to the end symbol of a grid maze",
		Long: `path reads a rectangular text maze and prints the number of steps on a
shortest route from the start rune to the end rune. Symbols and diagonal
movement come from the grid section of --config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(args[0])
			if err != nil {
				return err
			}
			gc := a.cfg.Grid
			opts := gridgraph.DefaultGridOptions()
			if gc.Diagonal {
				opts.Conn = gridgraph.Conn8
			}
			gg, err := gridgraph.Parse(lines, gridgraph.Walls(gc.Walls), opts)
			if err != nil {
				return err
			}
			a.log.Debug("grid parsed",
				zap.Int("width", gg.Width),
				zap.Int("height", gg.Height),
				zap.Stringer("conn", gg.Conn),
				zap.Uint64("fingerprint", gg.Fingerprint()))

			from, err := gridgraph.FindRune(lines, gc.startRune())
			if err != nil {
				return err
			}
			to, err := gridgraph.FindRune(lines, gc.endRune())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if regions {
				fmt.Fprintf(out, "regions %d\n", len(gg.ConnectedComponents()))
			}
			path, steps, err := gg.ShortestPath(from, to)
			if err != nil {
				a.log.Warn("no route", zap.Stringer("from", from), zap.Stringer("to", to))
				return err
			}
			a.log.Info("route found", zap.Int("steps", steps), zap.Int("cells", len(path)))
			fmt.Fprintf(out, "steps %d\n", steps)
			if show {
				fmt.Fprint(out, render(lines, path))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "print the maze with the route marked as 'O'")
	cmd.Flags().BoolVar(&regions, "regions", false, "also print the number of open regions")

	return cmd
}

// render overlays path onto lines, keeping both endpoints' own runes.
func render(lines []string, path []point.Pt[int]) string {
	rows := make([][]rune, len(lines))
	for y, l := range lines {
		rows[y] = []rune(l)
	}
	for i, p := range path {
		if i == 0 || i == len(path)-1 {
			continue
		}
		rows[p.Y][p.X] = 'O'
	}
	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(string(r))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (a *app) turnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "turn DIR [L|R...]",
		Short: "Apply quarter turns to a compass direction (N, S, E, W)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := point.ParseDir(args[0])
			if err != nil {
				return err
			}
			for _, s := range args[1:] {
				t, err := point.ParseTurn(s)
				if err != nil {
					return err
				}
				d = d.Turn(t)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)

			return nil
		},
	}
}

// parseMove reads "R4" or "U12" into a Dir2 and a distance.
func parseMove(s string) (point.Dir2, int, error) {
	if s == "" {
		return 0, 0, errors.New("empty move")
	}
	d, err := point.ParseDir2(s[:1])
	if err != nil {
		return 0, 0, err
	}
	n := 1
	if len(s) > 1 {
		if n, err = strconv.Atoi(s[1:]); err != nil {
			return 0, 0, fmt.Errorf("move %q: %w", s, err)
		}
	}

	return d, n, nil
}

func (a *app) walkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "walk MOVE...",
		Short: "Follow moves like R4 U2 L1 from the origin (y grows downward)",
		Long: `walk prints the final position and its Manhattan distance from the
origin. A move is U, D, L or R followed by an optional step count.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p point.Pt[int]
			for _, s := range args {
				d, n, err := parseMove(s)
				if err != nil {
					return err
				}
				p = p.Move(d.Dir(), n)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v %d\n", p, p.Manhattan(point.Pt[int]{}))

			return nil
		},
	}
}
