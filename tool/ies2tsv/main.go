// Copyright 2023 Linkall Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// ies2tsv is a command line application that converts IES table files to
// tab separated text.
package main

import (
	// standard libraries.
	"os"

	// this project.
	"github.com/vanus-labs/ies2tsv/tool/ies2tsv/command"
)

func main() {
	cmd := command.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		command.PrintError(cmd, err)
		os.Exit(-1)
	}
}
