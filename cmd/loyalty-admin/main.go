package main

import (
	"fmt"
	"os"

	"loyalty_admin/internal"
)

func main() {
	if err := internal.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
