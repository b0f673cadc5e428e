package main

import (
	"log"

	"github.com/Manalokosdev/Ribossome/internal/repo"
)

func main() {
	root, err := repo.FindRoot()
	if err != nil {
		log.Fatal("Error locating repository root: ", err.Error())
	}
	if err := NewApp(root).Run(); err != nil {
		log.Fatal("Error generating sensor power table: ", err.Error())
	}
}
