package commands

import (
	"fmt"
	"strings"

	"github.com/ncobase/taskbridge/ecode"
	"github.com/ncobase/taskbridge/filter"
	"github.com/ncobase/taskbridge/logging/logger"
	"github.com/ncobase/taskbridge/resp"
	"github.com/ncobase/taskbridge/script"
	"github.com/ncobase/taskbridge/validation"
	"github.com/spf13/cobra"
)

func newFilterCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "filter",
		Aliases: []string{"f"},
		Short:   "Task filter commands",
		Long:    `Normalize task filters and generate the scripts that apply them.`,
	}

	cmd.AddCommand(
		newFilterNormalizeCommand(a),
		newFilterScriptCommand(a),
	)

	return cmd
}

// normalizedOutput is the payload of filter normalize.
type normalizedOutput struct {
	Filter   filter.Normalized  `json:"filter"`
	CacheKey string             `json:"cacheKey"`
	Unknown  []string           `json:"unknownProperties,omitempty"`
	Errors   []validation.Error `json:"errors,omitempty"`
}

func newFilterNormalizeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [file]",
		Short: "Normalize a filter and print its canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, unknown, err := a.parseFilter(cmd, args)
			if err != nil {
				return err
			}
			key, err := filter.CacheKey(n)
			if err != nil {
				return err
			}
			out := normalizedOutput{
				Filter:   n,
				CacheKey: key,
				Unknown:  unknown,
				Errors:   filter.ValidateOperators(n.Spec()),
			}
			return writeJSON(cmd, resp.BuildSuccess("filter_normalize", out))
		},
	}
}

func newFilterScriptCommand(a *app) *cobra.Command {
	var (
		collection string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "script [file]",
		Short: "Generate the task query script for a filter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _, err := a.parseFilter(cmd, args)
			if err != nil {
				return err
			}
			if errs := filter.ValidateOperators(n.Spec()); len(errs) > 0 {
				return fmt.Errorf("%s: %s", ecode.ValidationErr, errs[0].Message)
			}

			opts := script.Options{
				Collection:   script.Collection(collection),
				DefaultLimit: a.cfg.Script.DefaultLimit,
			}
			if collection == "" && a.cfg.Script.Collection != string(script.FlattenedTasks) {
				opts.Collection = script.Collection(a.cfg.Script.Collection)
			}
			if cmd.Flags().Changed("limit") {
				opts.Limit = &limit
			}

			text, err := script.FullScript(n, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVar(&collection, "collection", "", "task collection to walk (flattenedTasks or inbox)")
	cmd.Flags().IntVar(&limit, "limit", 0, "override the filter limit")

	return cmd
}

// parseFilter reads and normalizes a filter. Unknown properties are logged,
// or rejected when filter.strict is set.
func (a *app) parseFilter(cmd *cobra.Command, args []string) (filter.Normalized, []string, error) {
	raw, err := readObject(cmd, args)
	if err != nil {
		return filter.Normalized{}, nil, err
	}
	n, unknown, err := filter.Parse(raw)
	if err != nil {
		return filter.Normalized{}, unknown, fmt.Errorf("%s: %w", ecode.InvalidRequest, err)
	}
	if len(unknown) > 0 {
		if a.cfg.Filter.Strict {
			return filter.Normalized{}, unknown, fmt.Errorf("%s: unknown filter properties: %s",
				ecode.InvalidRequest, strings.Join(unknown, ", "))
		}
		logger.StdLogger().Warnf(cmd.Context(), "ignoring unknown filter properties: %s", strings.Join(unknown, ", "))
	}
	return n, unknown, nil
}
