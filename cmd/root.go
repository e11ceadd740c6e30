package cmd

import (
	"fmt"
	"github.com/ValentinKolb/mlio/cmd/bin"
	"github.com/ValentinKolb/mlio/cmd/config"
	"github.com/ValentinKolb/mlio/cmd/fs"
	"github.com/ValentinKolb/mlio/cmd/jsondoc"
	"github.com/ValentinKolb/mlio/cmd/util"
	"github.com/ValentinKolb/mlio/lib/common"
	"github.com/ValentinKolb/mlio/lib/fileio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "mlio",
		Short: "configuration and artifact helpers for ml projects",
		Long: fmt.Sprintf(`mlio (v%s)

Helpers for the files of machine-learning projects: yaml configuration,
json documents, binary model artifacts, directory trees and file sizes.
All flags can also be set via environment variables (MLIO_<FLAG>, e.g.
MLIO_CODEC=msgpack) or in .env / .env.local files.`, Version),
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("metrics") {
				fileio.WriteMetrics(cmd.ErrOrStderr())
			}
		},
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mlio",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mlio v%s\n", Version)
		},
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// logs go to stderr, stdout is reserved for command output
	common.SetLogOutput(os.Stderr)

	// Add Commands
	RootCmd.AddCommand(config.ConfigCommands)
	RootCmd.AddCommand(jsondoc.JSONCommands)
	RootCmd.AddCommand(bin.BinCommands)
	RootCmd.AddCommand(fs.DirsCmd)
	RootCmd.AddCommand(fs.SizeCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
