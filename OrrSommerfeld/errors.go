package OrrSommerfeld

import (
	"errors"
	"fmt"

	"github.com/notargets/poiseuille/quadrature"
)

var (
	ErrInvalidElementDescriptor = errors.New("orrsommerfeld: invalid element descriptor")
	ErrInvalidSpectralParams    = errors.New("orrsommerfeld: invalid spectral parameters")
	ErrIntegrationFailed        = errors.New("orrsommerfeld: integration failed")
)

// IntegrationError reports the matrix entry whose integral did not converge
type IntegrationError struct {
	Row, Col int
	Part     quadrature.Part
	Err      error
}

func newIntegrationError(row, col int, err error) (ie *IntegrationError) {
	ie = &IntegrationError{Row: row, Col: col, Part: quadrature.UnknownPart, Err: err}
	var pe *quadrature.PartError
	if errors.As(err, &pe) {
		ie.Part, ie.Err = pe.Part, pe.Err
	}
	return
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("%v: entry (%d,%d), %s part: %v", ErrIntegrationFailed, e.Row, e.Col, e.Part, e.Err)
}

func (e *IntegrationError) Unwrap() []error { return []error{ErrIntegrationFailed, e.Err} }

// ElementError attaches the element number to a failure during global assembly
type ElementError struct {
	K   int
	Err error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.K, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }
