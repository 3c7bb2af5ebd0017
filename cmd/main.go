package main

import (
	"go-vidshare-api/app"
)

// @title           VidShare API
// @version         1.0
// @description     Video sharing platform backend: channels, videos, comments, tweets, playlists, subscriptions and likes.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
