package main

import (
	"os"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/cli"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	command := NewInterviewCtlCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewInterviewCtlCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interviewctl [flags] [options]",
		Short: "interviewctl manages candidates and offline interviews.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdInit())
	cmd.AddCommand(cli.NewCmdList())
	cmd.AddCommand(cli.NewCmdShow())
	cmd.AddCommand(cli.NewCmdGenerate())
	cmd.AddCommand(cli.NewCmdInterview())
	cmd.AddCommand(cli.NewCmdSetStatus())

	return cmd
}
