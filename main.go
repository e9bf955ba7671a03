package main

import "freelance-hub-api/config"

func main() {
	config.RunServer()
}
