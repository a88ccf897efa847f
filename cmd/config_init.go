package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gizmo3030/awakening-data/internal/config"

	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config, including the manual item overrides, to a YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		path := "awakening-data.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		def := config.DefaultConfig()

		if _, err := os.Stat(path); err == nil {
			reader := bufio.NewReader(os.Stdin)
			fmt.Printf("Config %s already exists. Overwrite? [y/N]: ", path)
			resp, _ := reader.ReadString('\n')
			resp = strings.TrimSpace(strings.ToLower(resp))

			if resp != "y" && resp != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := config.SaveYAML(def, path); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Println("Config created at:", path)
		fmt.Println("Edit manual_items to curate records merged over scraped data.")

		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
