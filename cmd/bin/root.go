package bin

import (
	"fmt"
	"github.com/ValentinKolb/mlio/cmd/util"
	"github.com/ValentinKolb/mlio/lib/fileio"
	"github.com/spf13/cobra"
)

var (
	files *fileio.Files

	// BinCommands represents the binary artifact command group
	BinCommands = &cobra.Command{
		Use:               "bin",
		Short:             "Inspect and convert binary artifacts",
		PersistentPreRunE: setupFiles,
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect [file]",
		Short: "Prints the header of a binary artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header, err := files.InspectBin(args[0])
			if err != nil {
				return err
			}
			size, err := files.GetSize(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", header, size)
			return err
		},
	}

	fromJSONCmd = &cobra.Command{
		Use:   "from-json [json file] [artifact]",
		Short: "Stores a json document as binary artifact (using --codec and --compression)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := files.LoadJSON(args[0])
			if err != nil {
				return err
			}
			if err := files.SaveBin(map[string]any(doc), args[1]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", args[1])
			return err
		},
	}

	toJSONCmd = &cobra.Command{
		Use:   "to-json [artifact] [json file]",
		Short: "Stores a binary artifact holding a document (e.g. created by from-json) as json",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc map[string]any
			if err := files.LoadBin(args[0], &doc); err != nil {
				return err
			}
			if err := files.SaveJSON(args[1], doc); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", args[1])
			return err
		},
	}
)

func init() {
	BinCommands.AddCommand(inspectCmd)
	BinCommands.AddCommand(fromJSONCmd)
	BinCommands.AddCommand(toJSONCmd)
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
