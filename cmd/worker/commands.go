package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "worker",
		Short:         "Offline tools for pipeline graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd(), newDotCmd())
	return root
}

func newAnalyzeCmd() *cobra.Command {
	var showCycle bool
	cmd := &cobra.Command{
		Use:   "analyze <pipeline.json|pipeline.yaml>",
		Short: "Count nodes and edges and check the pipeline is a DAG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeFile(cmd.Context(), cmd.OutOrStdout(), args[0], showCycle)
		},
	}
	cmd.Flags().BoolVar(&showCycle, "show-cycle", false, "include one offending cycle when the pipeline is not a DAG")
	return cmd
}

func newDotCmd() *cobra.Command {
	var outPath, title string
	cmd := &cobra.Command{
		Use:   "dot <pipeline.json|pipeline.yaml>",
		Short: "Render the pipeline as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDOT(cmd.OutOrStdout(), args[0], outPath, title)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "graph title")
	return cmd
}
