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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/growupboron/pyradigm/base/log"
	"github.com/growupboron/pyradigm/cmd/version"
	"github.com/growupboron/pyradigm/config"
	"github.com/growupboron/pyradigm/dataset"
)

var globalConfig *config.Config

var rootCommand = &cobra.Command{
	Use:   "pyradigm",
	Short: "Manage labeled feature tables: import, inspect, split and merge.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		log.SetLogger(cmd.Flags(), debug)
		configPath, _ := cmd.Flags().GetString("config")
		conf, err := config.LoadConfig(configPath)
		if err != nil {
			log.Logger().Fatal("failed to load config",
				zap.String("config", configPath), zap.Error(err))
		}
		globalConfig = conf
	},
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Check the version of pyradigm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.BuildInfo())
	},
}

func init() {
	log.AddFlags(rootCommand.PersistentFlags())
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().StringP("config", "c", "", "configuration file path")
	rootCommand.AddCommand(versionCommand)
	rootCommand.AddCommand(importCommand)
	rootCommand.AddCommand(infoCommand)
	rootCommand.AddCommand(splitCommand)
	rootCommand.AddCommand(mergeCommand)
}

// openView loads the table at path with the target type recorded in its
// header, behind the type-independent View surface.
func openView(path string) (dataset.View, *dataset.Summary, error) {
	summary, err := dataset.Peek(path)
	if err != nil {
		return nil, nil, err
	}
	var view dataset.View
	switch summary.TargetKind {
	case dataset.TargetString:
		view, err = dataset.Load[string](path)
	case dataset.TargetInt:
		view, err = dataset.Load[int](path)
	case dataset.TargetInt32:
		view, err = dataset.Load[int32](path)
	case dataset.TargetInt64:
		view, err = dataset.Load[int64](path)
	case dataset.TargetFloat32:
		view, err = dataset.Load[float32](path)
	case dataset.TargetFloat64:
		view, err = dataset.Load[float64](path)
	default:
		return nil, nil, fmt.Errorf("%w: unknown target kind %d",
			dataset.ErrCorruptData, summary.TargetKind)
	}
	if err != nil {
		return nil, nil, err
	}
	return view, summary, nil
}

func main() {
	defer log.CloseLogger()
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
