package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

const LogoASCII = `
      .-----------.
     /  o  o  o   /|
    /-----------/ |
    |  datahub  | |
    |   dhctl   | /
    |___________|/
`

func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, pterm.DefaultCenter.Sprint(pterm.NewRGB(24, 144, 255).Sprint(LogoASCII)))
}
