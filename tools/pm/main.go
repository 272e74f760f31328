package main

import "github.com/zostay/go-mediatype/tools/pm/cmd"

func main() {
	cmd.Execute()
}
