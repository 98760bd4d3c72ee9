package main

import (
	"TaskManager/internal/session"
	"TaskManager/pkg/translator"
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter asks confirmations on the terminal and prints notices to stderr.
type prompter struct {
	in        io.Reader
	out       io.Writer
	errOut    io.Writer
	tr        *translator.Translator
	assumeYes *bool
}

var (
	_ session.Confirmer = (*prompter)(nil)
	_ session.Notifier  = (*prompter)(nil)
)

func (p *prompter) Confirm(messageID string, onResult func(bool)) {
	if p.assumeYes != nil && *p.assumeYes {
		onResult(true)
		return
	}

	fmt.Fprintf(p.out, "%s [y/N] ", p.tr.T(messageID))
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && line == "" {
		onResult(false)
		return
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	onResult(answer == "y" || answer == "yes")
}

func (p *prompter) NotifyError(err error) {
	fmt.Fprintf(p.errOut, "%s: %s\n", p.tr.T("dialog_error"), p.tr.T(session.MessageID(err)))
}
