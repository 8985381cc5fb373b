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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/growupboron/pyradigm/base/log"
	"github.com/growupboron/pyradigm/dataset"
)

var mergeCommand = &cobra.Command{
	Use:   "merge <a.pyd> <b.pyd>",
	Short: "Merge two stored tables into one",
	Long: "Merge two stored tables into one. Tables over the same samplets " +
		"are merged feature-wise, tables over disjoint samplets are merged " +
		"samplet-wise.",
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		summary, err := dataset.Peek(args[0])
		if err != nil {
			log.Logger().Fatal("failed to read table", zap.String("path", args[0]), zap.Error(err))
		}
		switch summary.TargetKind {
		case dataset.TargetString:
			err = mergeTables[string](args[0], args[1], output)
		case dataset.TargetInt:
			err = mergeTables[int](args[0], args[1], output)
		case dataset.TargetInt32:
			err = mergeTables[int32](args[0], args[1], output)
		case dataset.TargetInt64:
			err = mergeTables[int64](args[0], args[1], output)
		case dataset.TargetFloat32:
			err = mergeTables[float32](args[0], args[1], output)
		case dataset.TargetFloat64:
			err = mergeTables[float64](args[0], args[1], output)
		default:
			err = fmt.Errorf("%w: unknown target kind %d", dataset.ErrCorruptData, summary.TargetKind)
		}
		if err != nil {
			log.Logger().Fatal("failed to merge tables", zap.Error(err))
		}
		log.Logger().Info("merged tables",
			zap.String("first", args[0]),
			zap.String("second", args[1]),
			zap.String("output", output))
	},
}

// mergeTables combines two tables stored with the same target kind.
func mergeTables[T dataset.TargetType](first, second, output string) error {
	a, err := dataset.Load[T](first)
	if err != nil {
		return err
	}
	b, err := dataset.Load[T](second)
	if err != nil {
		return err
	}
	combined, err := a.Combine(b)
	if err != nil {
		return err
	}
	return combined.Save(output)
}

func init() {
	mergeCommand.Flags().StringP("output", "o", "merged.pyd", "path of the output table")
}
