package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/propstore/pkg/export"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: MsgExportShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			props, cfg, err := loadProperties(getOptions(cmd))
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("format")
			if name == "" {
				name = cfg.Export.Format
			}

			format, err := export.ParseFormat(name)
			if err != nil {
				return err
			}

			out, err := export.Render(props, format)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().String("format", "", MsgFlagFormat)

	return cmd
}
