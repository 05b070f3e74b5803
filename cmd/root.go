package cmd

import (
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/spf13/cobra"
)

var logger = log.New("pathtracer")

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pathtracer",
		Short: "Offline Monte Carlo path tracer",
		Long: `pathtracer renders the built-in demo scenes with an unbiased path tracer
supporting spheres, quads, boxes, participating media, textures, motion blur
and depth of field.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolP("v", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().Bool("vv", false, "enable very verbose logging")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newScenesCmd())
	return rootCmd
}

func setupLogging(cmd *cobra.Command) {
	if v, _ := cmd.Flags().GetBool("v"); v {
		log.SetLevel(log.Info)
	}

	if vv, _ := cmd.Flags().GetBool("vv"); vv {
		log.SetLevel(log.Debug)
	}
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
