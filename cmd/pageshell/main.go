package main

import (
	"errors"
	"fmt"
	"os"

	pserrors "github.com/alexisbeaulieu97/pageshell/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps command errors onto process exit codes: 2 for bad
// configuration, 1 for everything else including drift.
func exitCode(err error) int {
	var parseErr *pserrors.ParseError
	var validationErr *pserrors.ValidationError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &parseErr), errors.As(err, &validationErr):
		return 2
	default:
		return 1
	}
}
