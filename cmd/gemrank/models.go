package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gemrank/gemrank/modelstore"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Manage downloaded genome-scale models",
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List managed models and their cache state",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range modelstore.Known() {
			path, err := store.Path(name)
			if err != nil {
				return err
			}
			state := "not cached"
			if _, err := os.Stat(path); err == nil {
				state = path
			}
			fmt.Printf("%-10s %s\n", name, state)
		}
		return nil
	},
}

var modelsFetchCmd = &cobra.Command{
	Use:   "fetch <name>",
	Short: "Download a managed model into the local cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := store.Fetch(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var modelsWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all cached model files and the cache directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Wipe(); err != nil {
			return err
		}
		fmt.Printf("Removed cached models under %s\n", store.Dir())
		return nil
	},
}
