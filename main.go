package main

import (
	"os"

	"GardenTrack/cmd"
)

// @title GardenTrack
// @version 1.0
// @description Garden plant and harvest tracker.
// @termsOfService http://swagger.io/terms/

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
