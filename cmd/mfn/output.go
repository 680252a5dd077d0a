// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/itchyny/gojq"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	quiet      = false
	jsonOutput = false
	jq         = ""
	names      = false
	noheader   = false
)

func enableQuietFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&quiet, "quiet", false, "No default output. Use with --jq to get specific output")
}

func enableJsonFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "JSON output, suppressing default output")
}

func enableJqFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&jq, "jq", "", "jq expression, suppressing default output")
}

func enableNamesFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&names, "names", false, "Only output names, suppressing default output")
}

func enableNoheaderFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&noheader, "no-header", false, "No header for lists")
}

func addStandardListFlags(cmd *cobra.Command) {
	enableNamesFlag(cmd)
	enableQuietFlag(cmd)
	enableJsonFlag(cmd)
	enableJqFlag(cmd)
	enableNoheaderFlag(cmd)
}

func addStandardGetFlags(cmd *cobra.Command) {
	enableQuietFlag(cmd)
	enableJsonFlag(cmd)
	enableJqFlag(cmd)
}

// tprint stands for terminal print
func tprint(format string, args ...interface{}) {
	// Ensure there are no leading newlines and exactly one trailing newline.
	format = strings.Trim(format, "\n") + "\n"
	fmt.Printf(format, args...)
}

func tprintErr(format string, args ...interface{}) {
	red := color.New(color.FgRed).Add(color.Bold)
	redf := red.SprintFunc()
	// Ensure there are no leading newlines and exactly one trailing newline.
	format = strings.Trim(format, "\n") + "\n"
	fmt.Fprint(os.Stderr, redf(fmt.Sprintf(format, args...)))
}

func tprintRaw(output string) {
	// Ensure there are no leading newlines and exactly one trailing newline.
	output = strings.Trim(output, "\n") + "\n"
	fmt.Print(output)
}

func tableView() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("    ")
	table.SetNoWhiteSpace(true)
	return table
}

func detailView() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(true)
	table.SetBorder(false)
	table.SetTablePadding("    ")
	table.SetNoWhiteSpace(true)
	return table
}

func displayJSON(entity any) {
	outBytes, err := json.MarshalIndent(entity, "", "  ")
	failOnError(err)
	tprintRaw(string(outBytes))
}

func displayJQForBytes(outBytes []byte, jqExpr string) {
	var tree any
	err := json.Unmarshal(outBytes, &tree)
	failOnError(err)
	jqQuery, err := gojq.Parse(jqExpr)
	failOnError(err)
	iter := jqQuery.Run(tree)
	for {
		value, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := value.(error); ok {
			if err, ok := err.(*gojq.HaltError); ok && err.Value() == nil {
				break
			}
			failOnError(err)
		}
		switch v := value.(type) {
		case string, int, bool:
			tprint("%v", v)
		default:
			displayJSON(value)
		}
	}
}

func displayJQ(entity any) {
	outBytes, err := json.Marshal(entity)
	failOnError(err)
	displayJQForBytes(outBytes, jq)
}
