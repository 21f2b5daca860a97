package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/propstore/internal/version"
	"github.com/arthur-debert/propstore/pkg/config"
	"github.com/arthur-debert/propstore/pkg/logging"
	"github.com/arthur-debert/propstore/pkg/paths"
	"github.com/arthur-debert/propstore/pkg/properties"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "propstore",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringP("file", "f", "", MsgFlagFile)
	rootCmd.PersistentFlags().BoolP("sections", "s", false, MsgFlagSections)
	rootCmd.PersistentFlags().StringArrayP("include", "I", nil, MsgFlagInclude)
	_ = rootCmd.MarkPersistentFlagRequired("file")

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newKeysCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// cmdOptions carries the persistent flag values shared by all commands
type cmdOptions struct {
	File     string
	Sections bool
	Include  []string
}

func getOptions(cmd *cobra.Command) cmdOptions {
	file, _ := cmd.Flags().GetString("file")
	sections, _ := cmd.Flags().GetBool("sections")
	include, _ := cmd.Flags().GetStringArray("include")
	return cmdOptions{File: file, Sections: sections, Include: include}
}

// loadProperties loads the property file named by the persistent flags,
// with the include path assembled from flags and tool configuration.
// The tool configuration is returned alongside the store so commands
// can consult it without loading it again.
func loadProperties(opts cmdOptions) (*properties.Properties, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	dirs := append(opts.Include, cfg.IncludePath...)
	resolver := paths.New(dirs...)

	props, err := properties.New(nil).WithResolver(resolver).Load(opts.File, opts.Sections)
	if err != nil {
		return nil, cfg, err
	}
	return props, cfg, nil
}
