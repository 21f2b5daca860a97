package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: MsgRenderShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			props, _, err := loadProperties(getOptions(cmd))
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), props.Render())
			return nil
		},
	}
}
