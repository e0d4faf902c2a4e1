package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contact",
	Short: "Terminal client for the contact form",
	Long: `contact fills in the contact form (name, phone, email, message) and
submits it to the contact form API, which appends it to the spreadsheet.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newSubmitCmd())
}
