package main

import "github.com/balaji-matta18/spendbuddy/cmd"

func main() {
	cmd.Execute()
}
