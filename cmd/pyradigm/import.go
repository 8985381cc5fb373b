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
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/growupboron/pyradigm/base/log"
	"github.com/growupboron/pyradigm/dataset"
)

var importCommand = &cobra.Command{
	Use:   "import <in.arff>",
	Short: "Import an ARFF dataset into a pyradigm table",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]
		output, _ := cmd.Flags().GetString("output")
		file, err := os.Open(input)
		if err != nil {
			log.Logger().Fatal("failed to open input", zap.String("path", input), zap.Error(err))
		}
		defer file.Close()
		stat, err := file.Stat()
		if err != nil {
			log.Logger().Fatal("failed to stat input", zap.String("path", input), zap.Error(err))
		}
		pbReader := progressbar.NewReader(file, progressbar.DefaultBytes(
			stat.Size(),
			"Importing "+input,
		))
		table, err := dataset.ReadARFF(&pbReader)
		if err != nil {
			log.Logger().Fatal("failed to import", zap.String("path", input), zap.Error(err))
		}
		if err := table.Save(output); err != nil {
			log.Logger().Fatal("failed to save table", zap.String("path", output), zap.Error(err))
		}
		numSamplets, numFeatures := table.Shape()
		log.Logger().Info("imported table",
			zap.String("input", input),
			zap.String("output", output),
			zap.Int("num_samplets", numSamplets),
			zap.Int("num_features", numFeatures))
	},
}

func init() {
	importCommand.Flags().StringP("output", "o", "table.pyd", "path of the output table")
}
