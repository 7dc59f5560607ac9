package main

import (
	"os"

	"S3Keep/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
