package main

import "duoChat/cmd/app"

// @title           duoChat API
// @version         1.0
// @description     One-to-one chat: accounts, messages and a live WebSocket channel.
// @BasePath        /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	app.GetApp().LetsGo()
}
