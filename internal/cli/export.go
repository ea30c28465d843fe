package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/linguist/pkg/errors"
	"github.com/matzehuels/linguist/pkg/export"
)

// exportCommand writes the index to an external store.
func (c *CLI) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export languages and lookup keys to a database",
	}

	cmd.AddCommand(c.exportSQLiteCommand())
	cmd.AddCommand(c.exportMongoCommand())
	return cmd
}

func (c *CLI) exportSQLiteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "sqlite <path>",
		Short:   "Export to a SQLite database file",
		Example: "  linguist export sqlite languages.db",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errs.ValidateFilePath(args[0]); err != nil {
				return err
			}
			sink, err := export.NewSQLite(args[0])
			if err != nil {
				return err
			}
			return c.runExport(cmd, sink, args[0])
		},
	}
}

func (c *CLI) exportMongoCommand() *cobra.Command {
	var uri, database string

	cmd := &cobra.Command{
		Use:   "mongo",
		Short: "Export to a MongoDB collection",
		Example: `  linguist export mongo
  linguist export mongo --uri mongodb://db:27017 --database meta`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if uri == "" {
				uri = c.config.Mongo.URI
			}
			if database == "" {
				database = c.config.Mongo.Database
			}
			if err := errs.ValidateMongoURI(uri); err != nil {
				return err
			}
			sink, err := export.NewMongo(cmd.Context(), uri, database)
			if err != nil {
				return errs.Wrap(errs.ErrCodeNetwork, err, "mongo %s", database)
			}
			return c.runExport(cmd, sink, fmt.Sprintf("%s.%s", database, export.DefaultMongoCollection))
		},
	}

	cmd.Flags().StringVar(&uri, "uri", "", "MongoDB connection URI (default from config)")
	cmd.Flags().StringVar(&database, "database", "", "database name (default from config)")
	return cmd
}

// runExport writes the current index to sink and closes it.
func (c *CLI) runExport(cmd *cobra.Command, sink export.Sink, target string) (err error) {
	defer func() {
		if cerr := sink.Close(); err == nil {
			err = cerr
		}
	}()

	ctx := cmd.Context()
	idx, err := c.index(ctx)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	if err := sink.Write(ctx, idx); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Exported %d languages", idx.Len()))

	printSuccess(cmd.OutOrStdout(), "Exported %d languages, %d lookup keys", idx.Len(), len(export.LookupKeys(idx)))
	printFile(cmd.OutOrStdout(), target)
	return nil
}
