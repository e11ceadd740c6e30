package jsondoc

import (
	"encoding/json"
	"fmt"
	"github.com/ValentinKolb/mlio/cmd/util"
	"github.com/ValentinKolb/mlio/lib/fileio"
	"github.com/spf13/cobra"
)

var (
	files *fileio.Files

	// JSONCommands represents the json command group
	JSONCommands = &cobra.Command{
		Use:               "json",
		Short:             "Read and write json documents",
		PersistentPreRunE: setupFiles,
	}

	showCmd = &cobra.Command{
		Use:   "show [file] [key]",
		Short: "Prints a json document or the value at a dotted key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := files.LoadJSON(args[0])
			if err != nil {
				return err
			}

			var value any = doc
			if len(args) == 2 {
				v, ok := doc.Get(args[1])
				if !ok {
					return fmt.Errorf("key %s not found in %s", args[1], args[0])
				}
				value = v
			}

			out, err := json.MarshalIndent(value, "", "    ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	fromYAMLCmd = &cobra.Command{
		Use:   "from-yaml [yaml file] [json file]",
		Short: "Converts a yaml configuration file into a json document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := files.ReadYAML(args[0])
			if err != nil {
				return err
			}
			if err := files.SaveJSON(args[1], cfg); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", args[1])
			return err
		},
	}
)

func init() {
	JSONCommands.AddCommand(showCmd)
	JSONCommands.AddCommand(fromYAMLCmd)
}

// setupFiles creates the file helpers from the configuration
func setupFiles(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	var err error
	files, err = util.GetFiles()
	return err
}
