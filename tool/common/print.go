package common

import (
	"github.com/fatih/color"
	"github.com/gravitational/trace"
)

// PrintError prints the red error message to the console
func PrintError(err error) {
	color.Red("Error: %v\n", trace.UserMessage(err))
}
