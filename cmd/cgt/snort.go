package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cgt-lang/cgt/core/cgterrors"
	"github.com/cgt-lang/cgt/core/graph"
	"github.com/cgt-lang/cgt/runtime/canonical"
	"github.com/cgt-lang/cgt/runtime/games/snort"
	"github.com/cgt-lang/cgt/runtime/partizan"
	"github.com/cgt-lang/cgt/runtime/transposition"
)

func newSnortCmd() *cobra.Command {
	var (
		file     string
		colors   string
		edges    string
		graphviz bool
	)

	cmd := &cobra.Command{
		Use:   "snort",
		Short: "Compute the canonical form of a Snort position",
		Long: `Compute the canonical form of a Snort position.

The position is given either inline:
  cgt snort --colors L,R,L --edges 1-2
or as a JSON file validated against the position schema:
  cgt snort --file position.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				pos snort.Position
				err error
			)
			switch {
			case file != "":
				pos, err = loadSnortFile(file)
			case colors != "":
				pos, err = parseSnortFlags(colors, edges)
			default:
				return cgterrors.New(cgterrors.InvalidInput,
					"either --file or --colors is required")
			}
			if err != nil {
				return err
			}

			if graphviz {
				fmt.Fprintln(cmd.OutOrStdout(), pos.Graphviz())
				return nil
			}

			store := canonical.NewStore()
			tt := transposition.New[snort.Position](store)

			var form *canonical.Form
			if flagParallel {
				form, err = partizan.CanonicalFormParallel(
					cmd.Context(), pos, tt,
					partizan.ParallelOptions{Logger: slog.Default()})
				if err != nil {
					return err
				}
			} else {
				form = partizan.CanonicalForm(pos, tt)
			}

			slog.Debug("search finished",
				slog.Int("positions", tt.Len()),
				slog.Int("forms", store.Len()))

			useColor := shouldUseColor(flagNoColor)
			fmt.Fprintln(cmd.OutOrStdout(), colorize(form.String(), colorBold, useColor))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON position file")
	cmd.Flags().StringVar(&colors, "colors", "", "Comma-separated vertex tints: E, L, R, or T")
	cmd.Flags().StringVar(&edges, "edges", "", "Comma-separated edges, e.g. 0-1,1-2")
	cmd.Flags().BoolVar(&graphviz, "graphviz", false, "Print the position in dot format instead of solving")

	return cmd
}

// tintNames are the accepted long spellings, used for typo suggestions.
var tintNames = []string{"empty", "left", "right", "taken"}

func parseSnortFlags(colorsFlag, edgesFlag string) (snort.Position, error) {
	var vertices []snort.VertexColor
	for _, c := range strings.Split(colorsFlag, ",") {
		switch strings.TrimSpace(strings.ToUpper(c)) {
		case "E", "EMPTY":
			vertices = append(vertices, snort.Empty)
		case "L", "LEFT":
			vertices = append(vertices, snort.TintLeft)
		case "R", "RIGHT":
			vertices = append(vertices, snort.TintRight)
		case "T", "TAKEN":
			vertices = append(vertices, snort.Taken)
		default:
			err := cgterrors.New(cgterrors.InvalidInput, "unknown vertex tint %q", c)
			if near := suggest(strings.TrimSpace(c), tintNames); near != "" {
				err = cgterrors.New(cgterrors.InvalidInput,
					"unknown vertex tint %q (did you mean %q?)", c, near)
			}
			return snort.Position{}, err
		}
	}

	edges, err := parseEdges(edgesFlag, len(vertices))
	if err != nil {
		return snort.Position{}, err
	}
	return snort.WithColors(vertices, graph.FromEdges(len(vertices), edges))
}

func parseEdges(edgesFlag string, order int) ([][2]int, error) {
	if edgesFlag == "" {
		return nil, nil
	}
	var edges [][2]int
	for _, e := range strings.Split(edgesFlag, ",") {
		uv := strings.SplitN(strings.TrimSpace(e), "-", 2)
		if len(uv) != 2 {
			return nil, cgterrors.New(cgterrors.InvalidInput, "malformed edge %q", e)
		}
		u, err := strconv.Atoi(uv[0])
		if err != nil {
			return nil, cgterrors.Wrap(cgterrors.InvalidInput, "malformed edge", err)
		}
		v, err := strconv.Atoi(uv[1])
		if err != nil {
			return nil, cgterrors.Wrap(cgterrors.InvalidInput, "malformed edge", err)
		}
		if u < 0 || u >= order || v < 0 || v >= order {
			return nil, cgterrors.New(cgterrors.InvalidInput,
				"edge %q out of range for %d vertices", e, order)
		}
		edges = append(edges, [2]int{u, v})
	}
	return edges, nil
}

func loadSnortFile(path string) (snort.Position, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return snort.Position{}, cgterrors.Wrap(cgterrors.InputRead,
			"could not read position file", err)
	}

	doc, err := validateSnortDocument(raw)
	if err != nil {
		return snort.Position{}, err
	}

	var vertices []snort.VertexColor
	for _, v := range doc.Vertices {
		switch v {
		case "empty":
			vertices = append(vertices, snort.Empty)
		case "left":
			vertices = append(vertices, snort.TintLeft)
		case "right":
			vertices = append(vertices, snort.TintRight)
		case "taken":
			vertices = append(vertices, snort.Taken)
		}
	}

	edges := make([][2]int, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		if e[0] >= len(vertices) || e[1] >= len(vertices) {
			return snort.Position{}, cgterrors.New(cgterrors.InvalidInput,
				"edge [%d,%d] out of range for %d vertices", e[0], e[1], len(vertices))
		}
		edges = append(edges, [2]int{e[0], e[1]})
	}
	return snort.WithColors(vertices, graph.FromEdges(len(vertices), edges))
}

// snortDocument is the decoded position file.
type snortDocument struct {
	Vertices []string `json:"vertices"`
	Edges    [][2]int `json:"edges"`
}

func validateSnortDocument(raw []byte) (snortDocument, error) {
	var loose interface{}
	if err := json.Unmarshal(raw, &loose); err != nil {
		return snortDocument{}, cgterrors.Wrap(cgterrors.SchemaValidation,
			"position file is not valid JSON", err)
	}
	if err := snortSchema().Validate(loose); err != nil {
		return snortDocument{}, cgterrors.Wrap(cgterrors.SchemaValidation,
			"position file does not match the schema", err)
	}

	var doc snortDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return snortDocument{}, cgterrors.Wrap(cgterrors.SchemaValidation,
			"could not decode position file", err)
	}
	return doc, nil
}
