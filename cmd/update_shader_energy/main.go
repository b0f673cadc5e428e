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
		SharedWGSLPath: filepath.Join(root, "shaders", "shared.wgsl"),
	}
	updated, err := patch.UpdateShaderEnergy(cfg)
	if err != nil {
		log.Fatal("Error updating shader source: ", err.Error())
	}
	fmt.Println("Successfully updated shaders/shared.wgsl")
	fmt.Printf("Changed %d amino acid blocks to store 1.0 energy\n", updated)
}
