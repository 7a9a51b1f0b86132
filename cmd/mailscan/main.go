package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-mailparse/cmd/mailscan/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
