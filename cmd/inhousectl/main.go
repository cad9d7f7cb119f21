package main

import (
	"context"

	"inhouse/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cli.Main(context.Background())
}
