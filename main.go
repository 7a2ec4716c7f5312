package main

import "mtg-indexer/cmd"

func main() {
	cmd.Execute()
}
