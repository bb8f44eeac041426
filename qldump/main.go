package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/gruntwork-io/go-commons/errors"

	"github.com/cuthbertLab/quaver/duration"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: qldump <quarter-length>")
		os.Exit(1)
	}

	// big.Rat accepts both "N/D" and decimal forms
	ql, ok := new(big.Rat).SetString(os.Args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "qldump: cannot parse quarter length %q\n", os.Args[1])
		os.Exit(1)
	}

	units, err := duration.Decompose(ql)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qldump: %v\n", errors.WithStackTrace(err))
		os.Exit(1)
	}

	// dump out one unit per line with its exact length
	for _, u := range units {
		fmt.Printf("%s\t%s\n", u.GetQuarterLength().RatString(), u)
	}
}
