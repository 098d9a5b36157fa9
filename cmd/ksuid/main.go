// cmd/ksuid/main.go
package main

import (
	"os"

	"github.com/sjatkinson/ksuid/internal/cli"
)

func main() {
	code := cli.Run(os.Args[1:], cli.Config{
		AppName: "ksuid",
		Version: "0.1.0-dev",
	})
	os.Exit(code)
}
