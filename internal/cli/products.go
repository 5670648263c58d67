package cli

import (
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/skycast/internal/output"
	"github.com/wesleyorama2/skycast/pkg/seventimer"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the supported forecast products",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		noColor, _ := cmd.Flags().GetBool("no-color")
		formatter := output.NewFormatter(false, noColor || !output.ShouldColor(noColor))
		cmd.Print(formatter.FormatProducts(seventimer.Products()))
		return nil
	},
}

func init() {
	productsCmd.Flags().Bool("no-color", false, "Disable colored output")
}
