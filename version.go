package main

import "fmt"

const (
	APP_NAME    = "wikigen"
	APP_VERSION = "0.1.0"
)

// Set at link stage via `-ldflags "-X main.GIT_COMMIT=$(git rev-parse --short HEAD)"`
var GIT_COMMIT string

// Version string printed by the version command
var APP_SIGNATURE = fmt.Sprintf("%s (%s)", APP_NAME+"/"+APP_VERSION, func() string {
	if GIT_COMMIT != "" {
		return GIT_COMMIT
	}
	return "unknown"
}())
