package salesdoc

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind of a sales document
type Kind string

const (
	Presupuesto Kind = "presupuesto"
	Pedido      Kind = "pedido"
	Factura     Kind = "factura"
)

// Valid returns true for the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case Presupuesto, Pedido, Factura:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }

// rank orders the kinds in the direction documents get converted.
func (k Kind) rank() int {
	switch k {
	case Presupuesto:
		return 1
	case Pedido:
		return 2
	case Factura:
		return 3
	}
	return 0
}

// Cliente is the customer of a document.
type Cliente struct {
	Nombre string `json:"nombre"`
	NIF    string `json:"nif,omitempty"`
}

// Document is a sales document with its lines.
// Totals is kept up to date by the methods changing the lines.
type Document struct {
	ID      uuid.UUID `json:"id"`
	Kind    Kind      `json:"kind"`
	Numero  string    `json:"numero"`
	Fecha   time.Time `json:"fecha"`
	Cliente Cliente   `json:"cliente"`
	Lines   []Line    `json:"lines"`
	Notes   string    `json:"notes,omitempty"`
	Totals  Totals    `json:"totals"`

	// ParentID is the ID of the document this one was converted from.
	ParentID uuid.UUID `json:"parentId,omitzero"`
}

// IDOf returns the ID of doc, usable as tablestate.IDFunc.
func IDOf(doc *Document) uuid.UUID {
	if doc == nil {
		return uuid.Nil
	}
	return doc.ID
}

// NewDocument returns a validated Document with a new random ID
// and recalculated totals.
func NewDocument(kind Kind, numero string, fecha time.Time, cliente Cliente, lines ...Line) (*Document, error) {
	doc := &Document{
		ID:      uuid.New(),
		Kind:    kind,
		Numero:  numero,
		Fecha:   fecha,
		Cliente: cliente,
		Lines:   slices.Clone(lines),
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	doc.Recalculate()
	return doc, nil
}

// Validate returns all errors of the document
// and its lines joined with errors.Join.
func (doc *Document) Validate() error {
	var errs []error
	if !doc.Kind.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidKind, doc.Kind))
	}
	if doc.Numero == "" {
		errs = append(errs, ErrMissingNumber)
	}
	if doc.Cliente.Nombre == "" {
		errs = append(errs, ErrMissingCliente)
	}
	for i, line := range doc.Lines {
		if err := line.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

// Recalculate updates Totals from the lines.
func (doc *Document) Recalculate() {
	doc.Totals = CalcTotals(doc.Lines)
}

// AddLine validates and appends line.
func (doc *Document) AddLine(line Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	doc.Lines = append(doc.Lines, line)
	doc.Recalculate()
	return nil
}

// SetLine validates and replaces the line at index.
func (doc *Document) SetLine(index int, line Line) error {
	if index < 0 || index >= len(doc.Lines) {
		return fmt.Errorf("line index %d out of range [0, %d)", index, len(doc.Lines))
	}
	if err := line.Validate(); err != nil {
		return err
	}
	doc.Lines[index] = line
	doc.Recalculate()
	return nil
}

// RemoveLine removes the line at index.
func (doc *Document) RemoveLine(index int) error {
	if index < 0 || index >= len(doc.Lines) {
		return fmt.Errorf("line index %d out of range [0, %d)", index, len(doc.Lines))
	}
	doc.Lines = slices.Delete(doc.Lines, index, index+1)
	doc.Recalculate()
	return nil
}

// Total returns the total of the document including VAT.
func (doc *Document) Total() decimal.Decimal {
	return doc.Totals.Total
}

// ConvertTo returns a copy of the document as kind
// with a new ID, numero and fecha and the lines of doc.
// Documents can only be converted from presupuesto
// to pedido or factura and from pedido to factura.
func (doc *Document) ConvertTo(kind Kind, numero string, fecha time.Time) (*Document, error) {
	if !kind.Valid() || kind.rank() <= doc.Kind.rank() {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidConversion, doc.Kind, kind)
	}
	converted, err := NewDocument(kind, numero, fecha, doc.Cliente, doc.Lines...)
	if err != nil {
		return nil, err
	}
	converted.Notes = doc.Notes
	converted.ParentID = doc.ID
	return converted, nil
}
