package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/starford/termilink/internal/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		cli.RenderError(err)
		os.Exit(1)
	}
}
