package commands

import (
	"fmt"
	"slices"

	"github.com/ncobase/taskbridge/resp"
	"github.com/ncobase/taskbridge/script"
	"github.com/spf13/cobra"
)

var shapes = []resp.Shape{
	resp.ShapeTasks, resp.ShapeProjects, resp.ShapeTags, resp.ShapeFolders,
	resp.ShapeTask, resp.ShapeProject,
}

func newUnwrapCommand(_ *app) *cobra.Command {
	var (
		shape     string
		operation string
		cached    bool
	)

	cmd := &cobra.Command{
		Use:   "unwrap [file]",
		Short: "Unwrap a raw script result into a response envelope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(shapes, resp.Shape(shape)) {
				return fmt.Errorf("unknown shape %q", shape)
			}
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var opts []resp.Option
			if cached {
				opts = append(opts, resp.Cached())
			}
			if resp.Shape(shape) == resp.ShapeTasks {
				return writeEnvelope(cmd, resp.FromRaw[[]script.TaskRecord](operation, data, resp.ShapeTasks, opts...))
			}
			return writeEnvelope(cmd, resp.FromRaw[any](operation, data, resp.Shape(shape), opts...))
		},
	}
	cmd.Flags().StringVarP(&shape, "shape", "s", string(resp.ShapeTasks), "expected payload key")
	cmd.Flags().StringVarP(&operation, "operation", "o", "unwrap", "operation name recorded in metadata")
	cmd.Flags().BoolVar(&cached, "cached", false, "mark the result as served from cache")

	return cmd
}

// writeEnvelope prints env and reports a failed envelope as errInvalid.
func writeEnvelope[T any](cmd *cobra.Command, env resp.Envelope[T]) error {
	if err := writeJSON(cmd, env); err != nil {
		return err
	}
	if !env.Success {
		return errInvalid
	}
	return nil
}
