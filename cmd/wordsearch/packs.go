package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsearch/internal/registry"
	"github.com/vovakirdan/wordsearch/internal/storage"
	"github.com/vovakirdan/wordsearch/internal/words"
)

var flagImportName string

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "Manage word packs",
	Long: `List, show, import and delete word packs.

Built-in packs ship with the binary. Imported packs are stored in the
catalog database (--db) and hide a built-in pack of the same name.

Pack file format (YAML):
  name: colors
  title: Colors
  words: [red, green, blue, orange]`,
}

var packsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available packs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := newLogger("wordsearch", os.Stderr)
		if err != nil {
			return err
		}
		lib, closeLib := openLibrary(logger)
		defer closeLib()

		entries, err := lib.Entries(cmd.Context())
		if err != nil {
			return err
		}
		printPackTable(cmd.OutOrStdout(), entries)
		return nil
	},
}

var packsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the words of a pack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger("wordsearch", os.Stderr)
		if err != nil {
			return err
		}
		lib, closeLib := openLibrary(logger)
		defer closeLib()

		pack, err := lib.Resolve(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s) - %d words\n\n", pack.Title, pack.Name, len(pack.Words))
		fmt.Fprintf(out, "  %s\n", strings.Join(pack.Words, "  "))
		return nil
	},
}

var packsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a pack file into the catalog",
	Long: `Read a YAML pack file, normalize its words and store it in the catalog.
An existing pack with the same name is replaced. A catalog pack named like a
built-in pack hides the built-in one.

Examples:
  wordsearch packs import ./colors.yaml
  wordsearch packs import ./colors.yaml --name colours`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pack, err := words.LoadFile(args[0])
		if err != nil {
			return err
		}
		if flagImportName != "" {
			pack.Name = strings.ToLower(strings.TrimSpace(flagImportName))
		}

		store, err := storage.Open(app.cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SavePack(cmd.Context(), pack); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %q with %d words.\n", pack.Name, len(pack.Words))
		if registry.Exists(pack.Name) {
			fmt.Fprintf(cmd.OutOrStdout(), "It replaces the built-in %q pack until deleted.\n", pack.Name)
		}
		return nil
	},
}

var packsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a pack from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(app.cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeletePack(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q.\n", args[0])
		return nil
	},
}

func init() {
	packsImportCmd.Flags().StringVar(&flagImportName, "name", "", "Store the pack under this name")

	packsCmd.AddCommand(packsListCmd)
	packsCmd.AddCommand(packsShowCmd)
	packsCmd.AddCommand(packsImportCmd)
	packsCmd.AddCommand(packsDeleteCmd)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// printPackTable renders entries as a bordered table.
func printPackTable(w io.Writer, entries []words.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No packs available.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PACK", "TITLE", "WORDS", "SOURCE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, e := range entries {
		t.Row(e.Name, e.Title, strconv.Itoa(e.Words), e.Source)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'wordsearch play <pack>' to play a pack.")
}
