package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pitchcraft/pitchsmoke/pkg/config"
	"github.com/pitchcraft/pitchsmoke/pkg/style"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pitchsmoke configuration",
	Long: `Read and write the config file.

  pitchsmoke config list
  pitchsmoke config get <key>
  pitchsmoke config set <key> <value>

Keys:
  agent                  Workflow agent name
  base_url               Workflow API base URL
  local_base             Local server base URL for finalpitch
  poll_interval_seconds  Delay between poll attempts
  poll_attempts          Poll attempt budget

The API key is read from ` + config.EnvAPIKey + `, never from the file.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := config.Get(args[0])
		if err != nil {
			return err
		}
		if value == "" {
			fmt.Println("(not set)")
		} else {
			fmt.Println(value)
		}
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all config values",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := config.All()
		if err != nil {
			return err
		}

		fmt.Printf("\n%s\n", style.B(style.C(style.Cyan, "pitchsmoke config")))
		fmt.Printf("%s\n\n", style.C(style.Gray, config.Path()))

		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if all[k] == "" {
				fmt.Printf("  %-22s %s\n", k, style.C(style.Gray, "(not set)"))
			} else {
				fmt.Printf("  %-22s %s\n", k, style.C(style.Green, all[k]))
			}
		}

		if config.APIKey() == "" {
			fmt.Printf("\n  %-22s %s\n\n", config.EnvAPIKey, style.C(style.Red, "(not set)"))
		} else {
			fmt.Printf("\n  %-22s %s\n\n", config.EnvAPIKey, style.C(style.Green, "(set)"))
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
