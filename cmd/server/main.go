package main

import "netpay/internal/app/server"

func main() {
	server.Run()
}
