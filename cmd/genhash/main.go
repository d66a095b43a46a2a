package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	pwd := "eleostock2026"
	if len(os.Args) > 1 {
		pwd = os.Args[1]
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pwd), 12)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(h))
}
