package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/propstore/pkg/errors"
	"github.com/arthur-debert/propstore/pkg/properties"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set KEY VALUE [SECTION]",
		Short:   MsgSetShort,
		Example: MsgSetExample,
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := getOptions(cmd)

			props, _, err := loadProperties(opts)
			if err != nil {
				if !errors.IsErrorCode(err, errors.ErrFileNotFound) &&
					!errors.IsErrorCode(err, errors.ErrFileEmpty) {
					return err
				}
				// A fresh store is always flat and sections are never
				// auto-created, so a sectioned set has nowhere to go
				if opts.Sections {
					return fmt.Errorf(MsgErrNewSectioned, opts.File)
				}
				props = properties.New(nil)
			}

			if err := props.SetProperty(args[0], args[1], args[2:]...); err != nil {
				return err
			}

			return props.Store(opts.File)
		},
	}
}
