package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chandrasekarnarayana/night-sky/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the night-sky version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Println("night-sky", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
