// write_config dumps the default configuration so it can be edited and
// passed back through DUELPONG_CONFIG.
//
//	go run ./scripts duelpong.yaml
package main

import (
	"fmt"
	"os"

	"github.com/lguibr/duelpong/utils"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: write_config <output.yaml|output.toml|output.json>")
		os.Exit(1)
	}

	outputPath := os.Args[1]
	if err := utils.WriteConfig(outputPath, utils.DefaultConfig()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("wrote", outputPath)
}
