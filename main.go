package main

import (
	"os"

	"github.com/tablecraft/tablecraft/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
