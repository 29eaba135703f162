package main

import (
	"os"

	"github.com/open-cli-collective/mdslides/internal/cmd/root"
	"github.com/open-cli-collective/mdslides/internal/view"
)

func main() {
	cmd := root.NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		noColor, _ := cmd.PersistentFlags().GetBool("no-color")
		view.NewRenderer(view.FormatTable, noColor).Error(err.Error())
		os.Exit(1)
	}
}
