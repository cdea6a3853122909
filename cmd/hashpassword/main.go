// Command hashpassword prints the bcrypt hash to put into ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/hashpassword 'my admin password'
package main

import (
	"fmt"
	"os"

	"github.com/Dosada05/card-league/utils"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "usage: hashpassword <password>")
		os.Exit(2)
	}
	hash, err := utils.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
