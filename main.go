package main

import "product-catalog/cmd"

func main() {
	cmd.Execute()
}
