package commands

import (
	"github.com/ncobase/taskbridge/ecode"
	"github.com/ncobase/taskbridge/projection"
	"github.com/ncobase/taskbridge/resp"
	"github.com/ncobase/taskbridge/validation"
	"github.com/spf13/cobra"
)

func newProjectionCommand(_ *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projection",
		Aliases: []string{"p"},
		Short:   "Tag projection commands",
	}

	cmd.AddCommand(newProjectionResolveCommand())

	return cmd
}

// resolvedProjection is the payload of projection resolve.
type resolvedProjection struct {
	Spec   projection.Specification `json:"spec"`
	Fields projection.FieldSet      `json:"fields"`
	Result validation.Result        `json:"validation"`
}

func newProjectionResolveCommand() *cobra.Command {
	var (
		mode   string
		sortBy string
		usage  bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a projection mode to its field set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec := projection.Specification{
				Mode:   projection.Mode(mode),
				SortBy: projection.SortKey(sortBy),
			}
			if cmd.Flags().Changed("usage-stats") {
				spec.IncludeUsageStats = &usage
			}
			spec = projection.WithDefaults(spec)

			result := projection.Validate(spec)
			if !result.Valid {
				if err := writeJSON(cmd, resp.BuildError[any]("projection_resolve", ecode.ValidationErr, ecode.Text(ecode.ValidationErr), result)); err != nil {
					return err
				}
				return errInvalid
			}
			fields, err := projection.ResolveSpec(spec)
			if err != nil {
				return err
			}
			return writeJSON(cmd, resp.BuildSuccess("projection_resolve", resolvedProjection{
				Spec:   spec,
				Fields: fields,
				Result: result,
			}))
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "names, basic or full (default basic)")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "name or usage")
	cmd.Flags().BoolVar(&usage, "usage-stats", false, "include usage counters")

	return cmd
}
