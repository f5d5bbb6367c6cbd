package salesdoc

import (
	"fmt"

	"github.com/domonda/go-tablestate"
)

// ReadLines reads document lines from a view with the columns
// articulo, quantity and unitPrice and the optional columns
// description, discountPercent and vatPercent,
// for example a sheet or CSV file of a line import.
// Every line is validated.
func ReadLines(view tablestate.View) ([]Line, error) {
	lines, err := tablestate.ViewToStructSlice[Line](view, nil, "articulo", "quantity", "unitPrice")
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return lines, nil
}
