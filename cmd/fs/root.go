package fs

import (
	"fmt"
	"github.com/ValentinKolb/mlio/cmd/util"
	"github.com/ValentinKolb/mlio/lib/fileio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	files *fileio.Files

	// DirsCmd creates directories
	DirsCmd = &cobra.Command{
		Use:   "dirs [paths...]",
		Short: "Creates directories including missing parents",
		Long: `Creates directories including missing parents. Existing directories are left untouched.
The directories can also be taken from a yaml configuration file (--from-config) where --key
names a string or a list of strings (e.g. artifacts_root or data_ingestion.root_dir).`,
		PreRunE: setupFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if configFile := viper.GetString("from-config"); configFile != "" {
				cfg, err := files.ReadYAML(configFile)
				if err != nil {
					return err
				}
				key := viper.GetString("key")
				if !cfg.Has(key) {
					return fmt.Errorf("key %s not found in %s", key, configFile)
				}
				paths = append(paths, cfg.GetStringSlice(key)...)
			}
			if len(paths) == 0 {
				return fmt.Errorf("no directories given")
			}
			return files.CreateDirectories(paths, viper.GetBool("verbose"))
		},
	}

	// SizeCmd prints file sizes
	SizeCmd = &cobra.Command{
		Use:     "size [files...]",
		Short:   "Prints the size of files in KB",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: setupFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				size, err := files.GetSize(path)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", size, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

func init() {
	key := "verbose"
	DirsCmd.Flags().BoolP(key, "v", false, util.WrapString("Log every created directory"))

	key = "from-config"
	DirsCmd.Flags().String(key, "", util.WrapString("Yaml configuration file to read directories from"))

	key = "key"
	DirsCmd.Flags().String(key, "artifacts_root", util.WrapString("Dotted key of the directories in the configuration file (used with --from-config)"))
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
