package main

import "task-management-api.com/task-management-api/cmd"

func main() {
	cmd.Execute()
}
