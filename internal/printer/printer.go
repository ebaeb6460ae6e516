// Package printer renders a models.Value tree back to JSON text.
//
// The output format mirrors the parser's relaxed reading of JSON rather
// than the standard: numbers print with exactly two decimal places (lossy
// for integers and high-precision values), and strings print verbatim
// between quotes with no escaping, so a string containing a quote or
// control character yields syntactically invalid JSON. Callers needing
// round-trip fidelity must special-case such documents. There is no
// indentation and no line breaks.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/mcncl/arenajson/internal/models"
)

// Printer renders values to an io.Writer.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print renders v, recursively for arrays and objects.
func (p *Printer) Print(v *models.Value) error {
	switch v.Kind() {
	case models.KindNumber:
		n, _ := v.AsNumber()
		_, err := fmt.Fprintf(p.w, "%.2f", n)
		return err
	case models.KindBoolean:
		b, _ := v.AsBoolean()
		if b {
			_, err := io.WriteString(p.w, "true")
			return err
		}
		_, err := io.WriteString(p.w, "false")
		return err
	case models.KindString:
		// Verbatim between quotes: embedded quotes, backslashes and
		// control characters are not escaped.
		s, _ := v.AsString()
		_, err := fmt.Fprintf(p.w, "\"%s\"", s)
		return err
	case models.KindArray:
		arr, _ := v.AsArray()
		return p.printArray(arr)
	case models.KindObject:
		obj, _ := v.AsObject()
		return p.printObject(obj)
	default:
		return fmt.Errorf("cannot print value of kind %s", v.Kind())
	}
}

func (p *Printer) printArray(arr *models.Array) error {
	if _, err := io.WriteString(p.w, "["); err != nil {
		return err
	}
	for node := arr.Head(); node != nil; node = node.Next() {
		if err := p.Print(&node.Value); err != nil {
			return err
		}
		if node.Next() != nil {
			if _, err := io.WriteString(p.w, ", "); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(p.w, "]")
	return err
}

func (p *Printer) printObject(obj *models.Object) error {
	if _, err := io.WriteString(p.w, "{"); err != nil {
		return err
	}
	for node := obj.Head(); node != nil; node = node.Next() {
		if _, err := fmt.Fprintf(p.w, "\"%s\": ", node.Key); err != nil {
			return err
		}
		if err := p.Print(&node.Value); err != nil {
			return err
		}
		if node.Next() != nil {
			if _, err := io.WriteString(p.w, ", "); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(p.w, "}")
	return err
}

// String renders v to a string.
func String(v *models.Value) (string, error) {
	var sb strings.Builder
	if err := New(&sb).Print(v); err != nil {
		return "", err
	}
	return sb.String(), nil
}
