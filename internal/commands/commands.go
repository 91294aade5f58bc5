package commands

import (
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ..."
var Version = "dev"

type options struct {
	configPath    string
	noConfig      bool
	contentPath   string
	reducedMotion bool
	compactWidth  int
	noWelcome     bool
	watch         bool
	logFile       string
	debug         bool
}

// New returns the root command. Running it without a subcommand opens
// the book.
func New() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "magicbook",
		Short: "A portfolio you read like a book, in the terminal.",
		Long: `magicbook shows a personal portfolio as a four page book:
Home, About, Projects and Contact. Pages turn with an animated flip.`,
		Example: `
magicbook
magicbook --content ./portfolio.yaml --watch
magicbook --reduced-motion --no-welcome
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/magicbook/config.toml)")
	flags.BoolVar(&o.noConfig, "no-config", false, "ignore the config file and use defaults plus MAGICBOOK_* variables")
	flags.StringVar(&o.contentPath, "content", "", "portfolio YAML document (default is the built-in portfolio)")
	flags.BoolVar(&o.reducedMotion, "reduced-motion", false, "turn pages with a short fade instead of a flip")
	flags.IntVar(&o.compactWidth, "compact-width", 0, "terminal width below which the compact layout is used")
	flags.BoolVar(&o.noWelcome, "no-welcome", false, "skip the welcome screen")
	flags.BoolVar(&o.watch, "watch", false, "reload the portfolio document when it changes")
	flags.StringVar(&o.logFile, "log-file", "", "write logs to this file")
	flags.BoolVar(&o.debug, "debug", false, "log every page request")

	AddCommands(cmd)
	return cmd
}

// AddCommands attaches the subcommands to topLevel
func AddCommands(topLevel *cobra.Command) {
	addVersion(topLevel)
	addConfig(topLevel)
}
