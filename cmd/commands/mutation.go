package commands

import (
	"errors"

	"github.com/ncobase/taskbridge/ecode"
	"github.com/ncobase/taskbridge/logging/logger"
	"github.com/ncobase/taskbridge/mutation"
	"github.com/ncobase/taskbridge/resp"
	"github.com/spf13/cobra"
)

// errInvalid signals a completed run whose input failed validation.
var errInvalid = errors.New("input is invalid")

func newMutationCommand(_ *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mutation",
		Aliases: []string{"m"},
		Short:   "Mutation request commands",
	}

	cmd.AddCommand(newMutationValidateCommand())

	return cmd
}

func newMutationValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a create, update, complete, delete, batch or bulk_delete request",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readObject(cmd, args)
			if err != nil {
				return err
			}
			op, _ := mutation.OperationOf(raw)
			result := mutation.ValidateRaw(raw)

			if !result.Valid {
				logger.StdLogger().Debugf(cmd.Context(), "mutation %q rejected: %v", op, result.Codes())
				env := resp.BuildError[any]("validate_"+string(op), ecode.ValidationErr, ecode.Text(ecode.ValidationErr), result)
				if err := writeJSON(cmd, env); err != nil {
					return err
				}
				return errInvalid
			}
			return writeJSON(cmd, resp.BuildSuccess("validate_"+string(op), result))
		},
	}
}
