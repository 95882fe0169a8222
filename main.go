package main

import "github.com/netranshi-tripathi/sentiment-analyser/cmd"

func main() {
	cmd.Execute()
}
