package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/posthop/internal/config"
)

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Long: `Show prints the configuration after the config file and command-line
flags have been applied. The output is a valid config file, except that a
Redis password is masked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shown := *c.cfg
			if shown.Cache.RedisPassword != "" {
				shown.Cache.RedisPassword = "********"
			}
			return shown.Write(os.Stdout)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				p, err := config.Path()
				if err != nil {
					return err
				}
				path = p
			}
			printKeyValue("config", path)
			if _, err := os.Stat(path); err != nil {
				printDetail("not found, using defaults")
			}
			return nil
		},
	})

	return cmd
}
