package main

import "s3cli/cmd"

func main() {
	cmd.Execute()
}
