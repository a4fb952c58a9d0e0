package main

import (
	"github.com/danfortin/quotescrape/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for QUOTESCRAPE_* overrides; absence is fine.
	godotenv.Load()

	cli.Execute()
}
