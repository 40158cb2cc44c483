package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dalemusser/paperhub/internal/domain/taxonomy"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "taxonomy",
		Short:        "Inspect the PaperHub upload taxonomy",
		SilenceUsage: true,
	}
	root.AddCommand(
		categoriesCmd(),
		classesCmd(),
		provincesCmd(),
		contentTypesCmd(),
		boardsCmd(),
		subjectsCmd(),
		resolveCmd(),
		lookupCmd(),
		collectionsCmd(),
		checkCmd(),
		dumpCmd(),
	)
	return root
}

func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

func requireCategory(name string) error {
	if !taxonomy.IsCategory(name) {
		return fmt.Errorf("unknown category %q (known: %s)", name, strings.Join(taxonomy.Categories(), ", "))
	}
	return nil
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List main categories in wizard order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printLines(cmd.OutOrStdout(), taxonomy.Categories())
		},
	}
}

func classesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes <category>",
		Short: "List class levels of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCategory(args[0]); err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), taxonomy.ListClasses(args[0]))
			return nil
		},
	}
}

func provincesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "provinces <category> [class]",
		Short: "List provinces offered for a category and class",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCategory(args[0]); err != nil {
				return err
			}
			class := ""
			if len(args) == 2 {
				class = args[1]
			}
			printLines(cmd.OutOrStdout(), taxonomy.ListProvinces(args[0], class))
			return nil
		},
	}
}

func contentTypesCmd() *cobra.Command {
	var resourceType string
	cmd := &cobra.Command{
		Use:   "content-types <category>",
		Short: "List content types of a category for a resource type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCategory(args[0]); err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), taxonomy.ListContentTypes(args[0], resourceType))
			return nil
		},
	}
	cmd.Flags().StringVar(&resourceType, "resource-type", taxonomy.ResourcePDF, "PDF or Lecture")
	return cmd
}

func boardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boards <province>",
		Short: "List examination boards of a province",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printLines(cmd.OutOrStdout(), taxonomy.Boards(args[0]))
		},
	}
}

func subjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subjects <category> [class]",
		Short: "List suggested subjects",
		Args:  cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			class := ""
			if len(args) == 2 {
				class = args[1]
			}
			printLines(cmd.OutOrStdout(), taxonomy.Subjects(args[0], class))
		},
	}
}

func resolveCmd() *cobra.Command {
	var k taxonomy.Key
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the collection a selection is stored in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := taxonomy.ResolveCollectionName(k)
			fmt.Fprintln(cmd.OutOrStdout(), name)
			if name == taxonomy.DefaultCollection {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: selection falls back to the default collection")
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&k.MainCategory, "category", "", "main category")
	f.StringVar(&k.Province, "province", "", "province")
	f.StringVar(&k.ClassLevel, "class", "", "class level")
	f.StringVar(&k.ContentType, "content-type", "", "content type")
	return cmd
}

func lookupCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "lookup <collection>",
		Short: "Show the selection that produces a collection name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := taxonomy.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%q is not a known collection", args[0])
			}
			return encode(cmd.OutOrStdout(), format, k)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

func collectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List every collection the taxonomy can produce",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printLines(cmd.OutOrStdout(), taxonomy.KnownCollections())
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the taxonomy table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := taxonomy.Validate(); err != nil {
				return fmt.Errorf("taxonomy table has problems:\n%w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d categories, %d collections\n",
				len(taxonomy.Categories()), len(taxonomy.KnownCollections()))
			return nil
		},
	}
}

// dumpDoc keeps the category order next to the table, since map keys lose it.
type dumpDoc struct {
	Order      []string                     `json:"order" yaml:"order"`
	Categories map[string]taxonomy.Category `json:"categories" yaml:"categories"`
}

func dumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the whole taxonomy table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return encode(cmd.OutOrStdout(), format, dumpDoc{
				Order:      taxonomy.Categories(),
				Categories: taxonomy.Table(),
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

func encode(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}
