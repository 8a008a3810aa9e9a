package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/dynfee/pkg/dynfee"
)

const invalidNumberMsg = "Please enter a valid number."

var (
	// ErrInputClosed is returned when the input stream ends before a valid
	// number is entered.
	ErrInputClosed = errors.New("input closed before a valid number was entered")
)

// Prompter asks the user for numbers, one line at a time.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading lines from in and writing prompts
// and error messages to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Decimal shows the given label and reads a line until it parses as a
// number. Every malformed line prints an error message and the same label is
// shown again.
func (p *Prompter) Decimal(label string) (decimal.Decimal, error) {
	for {
		if _, err := fmt.Fprint(p.out, label); err != nil {
			return decimal.Zero, err
		}

		line, readErr := p.in.ReadString('\n')
		if readErr != nil && (readErr != io.EOF || len(line) == 0) {
			if readErr == io.EOF {
				return decimal.Zero, ErrInputClosed
			}
			return decimal.Zero, fmt.Errorf("reading input: %w", readErr)
		}

		value, err := ParseDecimal(line)
		if err == nil {
			return value, nil
		}

		log.WithError(err).WithField("input", line).Debug("malformed number")
		if _, err := fmt.Fprintln(p.out, invalidNumberMsg); err != nil {
			return decimal.Zero, err
		}

		if readErr == io.EOF {
			return decimal.Zero, ErrInputClosed
		}
	}
}

// ParseDecimal parses a number ignoring surrounding whitespace. Numbers out
// of float64 range are rejected with dynfee.ErrAmountOutOfRange.
func ParseDecimal(s string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if err := dynfee.CheckAmount(value); err != nil {
		return decimal.Zero, err
	}
	// zero may still carry a huge exponent
	if value.IsZero() {
		return decimal.Zero, nil
	}
	return value, nil
}
