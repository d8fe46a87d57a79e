package main

import "github.com/pttech/storefront/cmd"

func main() {
	cmd.Start()
}
