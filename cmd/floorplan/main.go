package main

import (
	"os"

	"github.com/planforge/floorplan/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "floorplan",
		Short: "Floor-plan geometric analysis engine",
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(zonesCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func analyzeCmd() *cobra.Command {
	var detect bool

	cmd := &cobra.Command{
		Use:   "analyze [project-path]",
		Short: "Run the full geometric analysis and emit the JSON report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAnalyze(args[0], detect)
		},
	}

	cmd.Flags().BoolVar(&detect, "detect", false, "auto-detect closed rooms as zones")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a plan document without running the full analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func zonesCmd() *cobra.Command {
	var detect bool

	cmd := &cobra.Command{
		Use:   "zones [project-path]",
		Short: "Materialize the plan's zones and display the summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runZones(args[0], detect)
		},
	}

	cmd.Flags().BoolVar(&detect, "detect", false, "auto-detect closed rooms as zones")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local API server for the drawing front end",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
