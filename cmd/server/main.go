package main

import (
	"github.com/sheetsql/sheetsql/internal/bootstrap"
)

func main() {
	bootstrap.Run()
}
