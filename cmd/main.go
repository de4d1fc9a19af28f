package main

import "github.com/abdulwaheedrrr/go-assistant/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustOpenStore()

	app.MustExecuteCLI()
}
