// main.go
package main

import (
	"os"

	"seat-booking/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
