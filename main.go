package main

import (
	"fmt"
	"os"

	"github.com/nsk20/End-to-End-Data-Science-Pipeline/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the dsp command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
