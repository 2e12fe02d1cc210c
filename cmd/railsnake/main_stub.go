//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of railsnake requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/railsnake` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal Snake, use `go run ./cmd/snake-term`.")
	os.Exit(2)
}
