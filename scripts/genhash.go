// One-off: go run scripts/genhash.go <password>
// Prints a bcrypt digest, handy for seeding an account by hand.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(1)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "genhash:", err)
		os.Exit(1)
	}
	fmt.Println(string(h))
}
