package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/shelfd-io/shelfd/config/options"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type optionInfo struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Default any      `json:"default"`
	Choices []string `json:"choices,omitempty"`
	Flags   []string `json:"flags"`
	Help    string   `json:"help"`
}

func describeOptions(reg *options.Registry) []optionInfo {
	flags := make(map[string][]string)
	options.NewParser(reg, "").FlagSet().VisitAll(func(f *pflag.Flag) {
		dest := options.Dest(f)
		flags[dest] = append(flags[dest], "--"+f.Name)
	})

	infos := make([]optionInfo, 0, reg.Len())
	for _, opt := range reg.Options() {
		infos = append(infos, optionInfo{
			Name:    opt.Name,
			Type:    opt.Kind().String(),
			Default: opt.Default,
			Choices: opt.Choices,
			Flags:   flags[opt.Name],
			Help:    options.HelpText(opt),
		})
	}
	return infos
}

func formatDefault(v any) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(v)
}

func newOptionsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the server options",
		Long:  ``,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := describeOptions(options.Default())
			switch format {
			case "json":
				b, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(b))
			case "table":
				table := tablewriter.NewWriter(cmd.OutOrStdout())
				table.SetHeader([]string{"Option", "Type", "Default", "Flags"})
				table.SetAutoWrapText(false)
				table.SetBorder(false)
				for _, info := range infos {
					typ := info.Type
					if len(info.Choices) > 0 {
						typ = "{" + strings.Join(info.Choices, ",") + "}"
					}
					table.Append([]string{info.Name, typ, formatDefault(info.Default), strings.Join(info.Flags, " ")})
				}
				table.Render()
			default:
				return fmt.Errorf("invalid format: %s", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "", "table", "Output format (table or json)")

	return cmd
}
