package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/StricklySoft/errcatalog/pkg/config"
	caterr "github.com/StricklySoft/errcatalog/pkg/errors"
	"github.com/StricklySoft/errcatalog/pkg/registry"
)

func newValidateCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a catalogue table for duplicate, malformed, or out-of-band entries",
		Long: `Validate the compiled-in catalogue, or a candidate table given with --file.
A table file is a YAML or JSON list of {identifier, code, template} objects.
Validation only reads the table; nothing is registered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := a.reg.Definitions()
			source := "builtin"
			if file != "" {
				loaded, err := readTable(file)
				if err != nil {
					return err
				}
				defs, source = loaded, file
			}

			err := registry.Validate(defs, registry.DefaultBands)
			if err == nil {
				_, werr := fmt.Fprintf(cmd.OutOrStdout(), "ok: %d definitions in %s\n", len(defs), source)
				return werr
			}

			var violations []error
			if joined, ok := err.(interface{ Unwrap() []error }); ok {
				violations = joined.Unwrap()
			} else {
				violations = []error{err}
			}
			for _, v := range violations {
				var ve *registry.ValidationError
				if errors.As(v, &ve) {
					a.logger.Warn("validation failed", "kind", ve.Kind, "definition", ve.Definition.String())
				}
				fmt.Fprintln(cmd.OutOrStdout(), v.Error())
			}
			return fmt.Errorf("%s: %d violations", source, len(violations))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "candidate table file (.yaml, .yml, or .json)")
	return cmd
}

func readTable(path string) ([]registry.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, caterr.Wrap(err, caterr.CodeFileNotFound).WithDetail("path", path)
		}
		return nil, caterr.Wrap(err, caterr.CodeReadFailed).WithDetail("path", path)
	}
	var defs []registry.Definition
	if err := config.Decode(path, data, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}
