package main

import "clementus360/habit-dashboard/cmd"

func main() {
	cmd.Execute()
}
