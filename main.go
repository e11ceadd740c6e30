package main

import "github.com/ValentinKolb/mlio/cmd"

func main() {
	cmd.Execute()
}
