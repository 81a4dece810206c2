package main

import (
	"fmt"
	"os"

	"github.com/khalid-nowaf/keytrie/pkg/cli"
)

func main() {
	if err := cli.Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
