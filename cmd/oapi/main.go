package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/scott-cotton/cli"
)

func main() {
	// OAPI_DEBUG_* switches may come from a .env file.
	_ = godotenv.Load()
	cli.MainContext(context.Background(), MainCommand())
}
