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
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/growupboron/pyradigm/base/log"
	"github.com/growupboron/pyradigm/dataset"
)

var splitCommand = &cobra.Command{
	Use:   "split <file.pyd>",
	Short: "Draw a stratified train/test split of a stored table",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		view, _, err := openView(args[0])
		if err != nil {
			log.Logger().Fatal("failed to read table", zap.String("path", args[0]), zap.Error(err))
		}
		opts := dataset.SplitOptions{Seed: globalConfig.Split.Seed}
		if cmd.Flags().Changed("seed") {
			opts.Seed, _ = cmd.Flags().GetInt64("seed")
		}
		if cmd.Flags().Changed("count-per-class") {
			opts.CountPerClass, _ = cmd.Flags().GetInt("count-per-class")
		} else if cmd.Flags().Changed("train-fraction") {
			opts.TrainFraction, _ = cmd.Flags().GetFloat64("train-fraction")
		} else {
			opts.TrainFraction = globalConfig.Split.TrainFraction
		}
		train, test, err := view.SplitIDs(opts)
		if err != nil {
			log.Logger().Fatal("failed to split table", zap.Error(err))
		}
		fmt.Printf("train (%d): %s\n", len(train), strings.Join(train, ","))
		fmt.Printf("test (%d): %s\n", len(test), strings.Join(test, ","))
	},
}

func init() {
	splitCommand.Flags().Float64("train-fraction", 0, "fraction of each class drawn into the training set")
	splitCommand.Flags().Int("count-per-class", 0, "number of samplets drawn from each class into the training set")
	splitCommand.Flags().Int64("seed", 0, "random seed")
}
