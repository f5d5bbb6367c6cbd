package salesdoc

import "errors"

var (
	ErrNegativeQuantity = errors.New("negative quantity")
	ErrNegativePrice    = errors.New("negative unit price")
	ErrInvalidDiscount  = errors.New("discount percent not within 0 and 100")
	ErrNegativeVAT      = errors.New("negative VAT percent")
	ErrInvalidKind      = errors.New("invalid document kind")
	ErrMissingNumber    = errors.New("missing document number")
	ErrMissingCliente   = errors.New("missing cliente name")
	ErrMissingArticulo  = errors.New("missing articulo")
)

// ErrInvalidConversion is returned for conversions
// against the direction presupuesto, pedido, factura.
var ErrInvalidConversion = errors.New("invalid document conversion")
