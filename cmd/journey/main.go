package main

import (
	"github.com/selebrow/journey/pkg/app"
)

const appName = "journey"

var (
	GitSha = "unknown"
	GitRef = "unknown"
)

func main() {
	app.Run(GitRef, GitSha, appName)
}
