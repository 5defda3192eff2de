package main

// @title Mindspace API
// @version 1.0
// @description Blog, private journal and AI chat backend.

// @host localhost:3000
// @BasePath /
// @schemes http
import (
	_ "mindspace-api/docs"
	protocol "mindspace-api/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
