package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linguist/pkg/cache"
	errs "github.com/matzehuels/linguist/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the dataset response cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := c.newCache(false)
			if err != nil {
				return err
			}
			defer backend.Close()

			clearer, ok := backend.(cache.Clearer)
			if !ok {
				printInfo(cmd.OutOrStdout(), "Cache backend %q holds nothing to clear", c.config.Cache.Backend)
				return nil
			}
			if err := clearer.Clear(cmd.Context()); err != nil {
				return errs.Wrap(errs.ErrCodeInternal, err, "clear cache")
			}

			printSuccess(cmd.OutOrStdout(), "Cleared %s cache", c.config.Cache.Backend)
			if fc, ok := backend.(*cache.FileCache); ok {
				printDetail(cmd.OutOrStdout(), "Directory: %s", fc.Dir())
			}
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch c.config.Cache.Backend {
			case BackendRedis:
				fmt.Fprintln(cmd.OutOrStdout(), c.config.Cache.RedisURL)
			case BackendNone:
				printInfo(cmd.OutOrStdout(), "Caching is disabled")
			default:
				dir, err := c.cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
			}
			return nil
		},
	}
}
