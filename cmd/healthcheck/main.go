// main.go
//
// Fluent HTTP assertions for exercising in-process web applications in tests
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of httpassert.
// httpassert is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// httpassert is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with httpassert.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/localnerve/httpassert/internal/config"
	"github.com/localnerve/httpassert/internal/database"
	"github.com/localnerve/httpassert/internal/services"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Error("failed to load configuration")
		return 1
	}
	logrus.SetLevel(logrus.WarnLevel)

	db, err := database.Connect(cfg)
	if err != nil {
		color.Red("unhealthy: %v", err)
		return 1
	}
	defer database.Close(db)

	result := services.HealthCheck(cfg, db)

	if result.Healthy() {
		color.Green("%s (%s)", result.Status, cfg.DBType)
	} else {
		color.Red("%s: %s", result.Status, result.ErrorMessage)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logrus.WithError(err).Error("failed to marshal health check result")
		return 1
	}
	fmt.Println(string(output))

	if !result.Healthy() {
		return 1
	}
	return 0
}
