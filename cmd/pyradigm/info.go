// Copyright 2025 pyradigm Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/growupboron/pyradigm/base/log"
)

var infoCommand = &cobra.Command{
	Use:   "info <file.pyd>",
	Short: "Summarize a stored table",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		view, summary, err := openView(args[0])
		if err != nil {
			log.Logger().Fatal("failed to read table", zap.String("path", args[0]), zap.Error(err))
		}
		fmt.Println(view.String())

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("property", "value")
		_ = table.Append([]string{"samplets", strconv.Itoa(summary.NumSamplets)})
		_ = table.Append([]string{"features", strconv.Itoa(summary.NumFeatures)})
		_ = table.Append([]string{"targets", summary.TargetKind.String()})
		_ = table.Append([]string{"values", summary.ValueKind.String()})
		_ = table.Append([]string{"description", summary.Description})
		for _, class := range view.ClassSet() {
			_ = table.Append([]string{"class " + class, strconv.Itoa(summary.ClassSizes[class])})
		}
		if err := table.Render(); err != nil {
			log.Logger().Fatal("failed to render summary", zap.Error(err))
		}

		stats, _ := cmd.Flags().GetBool("stats")
		if stats {
			statTable := tablewriter.NewWriter(os.Stdout)
			statTable.Header("feature", "mean", "std", "min", "max")
			for _, s := range view.Describe() {
				_ = statTable.Append([]string{
					s.Name,
					strconv.FormatFloat(s.Mean, 'g', 6, 64),
					strconv.FormatFloat(s.Std, 'g', 6, 64),
					strconv.FormatFloat(s.Min, 'g', 6, 64),
					strconv.FormatFloat(s.Max, 'g', 6, 64),
				})
			}
			if err := statTable.Render(); err != nil {
				log.Logger().Fatal("failed to render stats", zap.Error(err))
			}
		}
	},
}

func init() {
	infoCommand.Flags().Bool("stats", false, "show per-feature statistics")
}
