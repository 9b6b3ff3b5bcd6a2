package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/posthop/internal/config"
	"github.com/matzehuels/posthop/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the solver result cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached solver results",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			switch c.cfg.Cache.Backend {
			case config.BackendNone:
				printInfo("Cache is disabled")
				return nil

			case config.BackendRedis:
				rc, err := c.openRedis(ctx)
				if err != nil {
					return err
				}
				defer rc.Close()
				count, err := rc.Clear(ctx, cache.ScopePattern(redisPrefix))
				if err != nil {
					return err
				}
				printSuccess("Cleared %d cached results", count)
				printDetail("Redis: %s db %d", c.cfg.Cache.RedisAddr, c.cfg.Cache.RedisDB)
				return nil
			}

			dir, err := c.fileCacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			count, err := fc.Clear()
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached results", count)
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where cached results are stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch c.cfg.Cache.Backend {
			case config.BackendNone:
				printInfo("Cache is disabled")
				return nil
			case config.BackendRedis:
				fmt.Printf("redis://%s/%d\n", c.cfg.Cache.RedisAddr, c.cfg.Cache.RedisDB)
				return nil
			}
			dir, err := c.fileCacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
