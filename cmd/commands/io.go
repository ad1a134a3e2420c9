package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ncobase/taskbridge/types"
	"github.com/spf13/cobra"
)

// readInput returns the bytes of the file named by args[0], or stdin when
// args is empty or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

// readObject reads the input as a JSON object.
func readObject(cmd *cobra.Command, args []string) (types.JSON, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	v, err := types.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("input is not valid JSON: %w", err)
	}
	obj, ok := types.AsJSON(v)
	if !ok {
		return nil, fmt.Errorf("input must be a JSON object")
	}
	return obj, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
