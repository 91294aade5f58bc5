package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"magicbook/internal/config"
)

func addConfig(topLevel *cobra.Command) {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Long: `Print where the configuration lives and the values magicbook runs
with after MAGICBOOK_* environment overrides. The file is created with
defaults if it does not exist yet.`,
		Example: `
magicbook config
MAGICBOOK_UI_REDUCED_MOTION=true magicbook config
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigService(path)
			cfg, err := svc.Load()
			if err != nil {
				return err
			}
			data, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", svc.Path())
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "config file (default is $XDG_CONFIG_HOME/magicbook/config.toml)")

	topLevel.AddCommand(cmd)
}
