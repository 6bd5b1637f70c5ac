package main

import "bq25730-go/cmd/bq25730ctl/cmd"

func main() {
	cmd.Execute()
}
