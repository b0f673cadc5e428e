package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/Manalokosdev/Ribossome/internal/patch"
	"github.com/Manalokosdev/Ribossome/internal/repo"
)

func main() {
	root, err := repo.FindRoot()
	if err != nil {
		log.Fatal("Error locating repository root: ", err.Error())
	}
	cfg := patch.Config{
		PartPropertiesPath: filepath.Join(root, "config", "part_properties.json"),
	}
	if err := patch.UpdateEnergyStorage(cfg); err != nil {
		log.Fatal("Error updating part properties: ", err.Error())
	}
	fmt.Println()
	fmt.Println("Successfully updated part_properties.json")
}
