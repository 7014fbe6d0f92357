package main

import (
	"flag"
	"log"
	"os"

	"github.com/machakos/malaria/api/v1beta1/configs"
)

var outFile = flag.String("o", "configs.v1beta1.json", "Output file for the generated schema")

func main() {
	flag.Parse()

	err := os.WriteFile(*outFile, append(configs.Schema(), '\n'), 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
