package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/linguist/pkg/errors"
	lingclient "github.com/matzehuels/linguist/pkg/integrations/linguist"
	"github.com/matzehuels/linguist/pkg/linguist"
)

// fetchCommand downloads and validates the upstream languages.yml.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		output  string
		url     string
		refresh bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download and validate the upstream languages.yml",
		Long: `Download languages.yml from GitHub Linguist, check that it builds a valid
index and optionally save it. Responses are cached (see "linguist cache").`,
		Example: `  linguist fetch
  linguist fetch --output languages.yml
  linguist fetch --refresh --output - > languages.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if url != "" {
				if err := errs.ValidateURL(url); err != nil {
					return err
				}
				c.config.Dataset.URL = url
			}
			client, backend, err := c.datasetClient(noCache)
			if err != nil {
				return err
			}
			defer backend.Close()

			prog := newProgress(logger)
			spin := newSpinner(ctx, cmd.ErrOrStderr(), "Fetching "+client.URL())
			spin.Start()
			data, err := client.FetchRaw(ctx, refresh)
			if err != nil {
				spin.StopWithError("Fetch failed")
				return err
			}
			idx, err := linguist.Load(data)
			if err != nil {
				spin.StopWithError("Invalid dataset")
				return err
			}
			spin.Stop()
			prog.done(fmt.Sprintf("Fetched %d languages", idx.Len()))

			// Commit metadata only exists for the upstream repository.
			if client.URL() == lingclient.DefaultURL {
				if rev, err := client.LatestRevision(ctx, refresh); err != nil {
					logger.Debug("revision lookup failed", "error", err)
				} else {
					logger.Info("upstream revision", "sha", rev.SHA[:min(len(rev.SHA), 12)], "date", rev.Date, "message", rev.Message)
				}
			}

			w := cmd.OutOrStdout()
			switch output {
			case "":
				printSuccess(w, "%d languages, %d extensions, %d modes", idx.Len(), len(idx.Extensions()), len(idx.Modes()))
				printDetail(w, "%s", client.URL())
			case "-":
				_, err = w.Write(data)
				return err
			default:
				if err := errs.ValidateFilePath(output); err != nil {
					return err
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return errs.Wrap(errs.ErrCodeInvalidPath, err, "write %s", output)
				}
				printSuccess(w, "Saved %d languages", idx.Len())
				printFile(w, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to this file (- for stdout)")
	cmd.Flags().StringVar(&url, "url", "", "document URL (default from config)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")
	return cmd
}
