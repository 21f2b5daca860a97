package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get KEY [SECTION]",
		Short:   MsgGetShort,
		Example: MsgGetExample,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, _, err := loadProperties(getOptions(cmd))
			if err != nil {
				return err
			}

			value, ok, err := props.GetProperty(args[0], args[1:]...)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf(MsgErrNotFound, args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
