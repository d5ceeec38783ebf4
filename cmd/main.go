package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priyansh004/DevShare/cmd/service"
)

func main() {
	root := &cobra.Command{
		Use:   "devshare",
		Short: "devshare",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("empty command")
		},
	}

	root.AddCommand(service.NewCommand(), service.NewInitCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
