package main

import "github.com/mohammadtauchid/pagesim/cmd"

func main() {
	cmd.Execute()
}
