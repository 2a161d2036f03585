package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/javanhut/lineage/internal/colors"
	"github.com/javanhut/lineage/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var (
		global bool
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get and set configuration options",
		Long: `Get and set lineage configuration options.

Configuration can be set at two levels:
- Global (~/.lineageconfig) - applies everywhere
- Local (.lineage/config) - applies in the current directory only

Examples:
  lineage config input.file family.txt
  lineage config --global display.color false
  lineage config --list
  lineage config display.digest`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				return listConfig(out)
			}

			switch len(args) {
			case 1:
				return getConfigValue(out, args[0])
			case 2:
				return setConfigValue(out, args[0], args[1], global)
			}
			return fmt.Errorf("invalid usage. See: lineage config --help")
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Use global config file")
	cmd.Flags().BoolVar(&list, "list", false, "List all configuration")
	return cmd
}

func listConfig(out io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(out, colors.SectionHeader("Display Configuration:"))
	fmt.Fprintf(out, "  display.color = %s\n", colors.InfoText(strconv.FormatBool(cfg.Display.Color)))
	fmt.Fprintf(out, "  display.digest = %s\n", colors.InfoText(strconv.FormatBool(cfg.Display.Digest)))

	fmt.Fprintln(out)
	fmt.Fprintln(out, colors.SectionHeader("Input Configuration:"))
	if cfg.Input.File != "" {
		fmt.Fprintf(out, "  input.file = %s\n", colors.InfoText(cfg.Input.File))
	} else {
		fmt.Fprintf(out, "  input.file = %s\n", colors.Gray("(not set)"))
	}

	return nil
}

func getConfigValue(out io.Writer, key string) error {
	value, err := config.GetValue(key)
	if err != nil {
		return err
	}

	if value == "" {
		fmt.Fprintf(out, "%s is %s\n", key, colors.Gray("(not set)"))
	} else {
		fmt.Fprintln(out, value)
	}
	return nil
}

func setConfigValue(out io.Writer, key, value string, global bool) error {
	if err := config.SetValue(key, value, global); err != nil {
		return err
	}

	scope := "local"
	if global {
		scope = "global"
	}

	fmt.Fprintf(out, "%s %s config: %s = %s\n",
		colors.Green("Set"),
		scope,
		colors.Bold(key),
		colors.InfoText(value))
	return nil
}
