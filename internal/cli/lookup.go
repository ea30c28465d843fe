package cli

import (
	"encoding/json"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/linguist/pkg/errors"
	"github.com/matzehuels/linguist/pkg/linguist"
	"github.com/matzehuels/linguist/pkg/observability"
)

// lookupSpec describes one of the three lookup commands.
type lookupSpec struct {
	use, short, long, example string
	kind                      string
	find                      func(*linguist.Index, string) (*linguist.Language, bool)
}

func (c *CLI) nameCommand() *cobra.Command {
	return c.lookupCommand(lookupSpec{
		use:     "name <name>",
		short:   "Look up a language by name or alias",
		long:    "Look up a language by its canonical name or any alias, ignoring case.",
		example: "  linguist name golang\n  linguist name \"c#\" --json",
		kind:    "name",
		find:    (*linguist.Index).ByName,
	})
}

func (c *CLI) extCommand() *cobra.Command {
	return c.lookupCommand(lookupSpec{
		use:   "ext <extension>",
		short: "Look up the language owning a file extension",
		long: `Look up the language that owns a file extension.

The extension is given without its leading dot ("rs", not ".rs"). When
several languages claim an extension, the one whose name or alias equals
it wins.`,
		example: "  linguist ext rs\n  linguist ext md --json",
		kind:    "extension",
		find:    (*linguist.Index).ByExtension,
	})
}

func (c *CLI) modeCommand() *cobra.Command {
	return c.lookupCommand(lookupSpec{
		use:     "mode <codemirror-mode>",
		short:   "Look up a language by CodeMirror mode",
		long:    "Look up the language for a CodeMirror mode. When several languages share a mode, the one named after it wins.",
		example: "  linguist mode clike",
		kind:    "mode",
		find:    (*linguist.Index).ByCodemirrorMode,
	})
}

func (c *CLI) lookupCommand(spec lookupSpec) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     spec.use,
		Short:   spec.short,
		Long:    spec.long,
		Example: spec.example,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			idx, err := c.index(ctx)
			if err != nil {
				return err
			}

			key := args[0]
			lang, ok := spec.find(idx, key)
			observability.Lookup().OnLookup(ctx, spec.kind, key, ok)
			if !ok {
				return errs.New(errs.ErrCodeNotFound, "no language for %s %q", spec.kind, key)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), lang)
			}
			printLanguage(cmd.OutOrStdout(), lang)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the record as JSON")
	return cmd
}

// listCommand prints every language, optionally restricted to one type.
func (c *CLI) listCommand() *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List languages",
		Example: `  linguist list
  linguist list --type prose
  linguist list --type data --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := c.index(cmd.Context())
			if err != nil {
				return err
			}

			langs := idx.All()
			if category != "" {
				if langs = idx.ByType(category); langs == nil {
					return errs.New(errs.ErrCodeNotFound, "no languages of type %q (have: %v)", category, idx.Types())
				}
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), langs)
			}
			fmt.Fprintln(cmd.OutOrStdout(), languageTable(langs))
			printDetail(cmd.OutOrStdout(), "%d languages", len(langs))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "type", "", "only list languages of this type (data, markup, programming, prose)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print records as a JSON array")
	return cmd
}

// browseCommand opens the interactive language browser.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse languages interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := c.index(cmd.Context())
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewBrowseModel(idx.All()),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
