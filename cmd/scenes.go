package cmd

import (
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoFormatHeaders(false)
			table.SetAutoWrapText(false)
			table.SetHeader([]string{"Scene", "Description"})
			for _, info := range scene.List() {
				table.Append([]string{info.Name, info.Description})
			}
			table.Render()
		},
	}
}
