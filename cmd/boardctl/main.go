package main

import (
	"context"
	"flag"
	"os"

	"github.com/avoronov/boardkeeper/internal/client"
	"github.com/avoronov/boardkeeper/internal/client/cli"
)

func main() {

	serverURL := flag.String("s", "http://localhost:8080", "base URL of the server")
	flag.Parse()

	ctx := context.Background()

	api := client.New(*serverURL)
	app := cli.NewApp(api, os.Stdin, os.Stdout)

	app.Root(ctx)

}
