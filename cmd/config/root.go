package config

import (
	"fmt"
	"github.com/ValentinKolb/mlio/cmd/util"
	"github.com/ValentinKolb/mlio/lib/fileio"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	files *fileio.Files

	// ConfigCommands represents the configuration command group
	ConfigCommands = &cobra.Command{
		Use:               "config",
		Short:             "Inspect yaml configuration files",
		PersistentPreRunE: setupFiles,
	}

	showCmd = &cobra.Command{
		Use:   "show [file] [key]",
		Short: "Prints a yaml configuration file or the value at a dotted key (e.g. data_ingestion.root_dir)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := files.ReadYAML(args[0])
			if err != nil {
				return err
			}

			var value any = cfg
			if len(args) == 2 {
				v, ok := cfg.Get(args[1])
				if !ok {
					return fmt.Errorf("key %s not found in %s", args[1], args[0])
				}
				value = v
			}

			out, err := yaml.Marshal(value)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}
)

func init() {
	ConfigCommands.AddCommand(showCmd)
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
