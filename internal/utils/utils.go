package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Printer writes colored progress lines. A nil writer discards everything.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = io.Discard
	}
	return &Printer{w: w}
}

func (p *Printer) Info(format string, args ...interface{}) {
	color.New(color.FgCyan).Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Success(format string, args ...interface{}) {
	color.New(color.FgGreen).Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Warn(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Error(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Plain(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

type InputUtils struct {
	In  io.Reader
	Out io.Writer
}

// AskConfirmation asks user for yes/no confirmation
func (i *InputUtils) AskConfirmation(message string, force bool) bool {
	if force {
		return true
	}

	in, out := i.In, i.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "%s (y/N): ", message)
	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
