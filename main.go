package main

import (
	"os"

	"github.com/garantico/feedsite/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
