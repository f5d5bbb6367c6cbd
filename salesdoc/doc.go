// Package salesdoc calculates the line and document totals
// of sales documents: presupuestos (quotes), pedidos (orders)
// and facturas (invoices).
//
// All amounts are github.com/shopspring/decimal values.
// Line amounts are rounded to cents before they are summed up,
// so the document totals always match the sum of the printed lines.
//
// Documents are meant as rows of a tablestate.Controller:
//
//	ctrl := tablestate.NewController(salesdoc.IDOf, tablestate.Config{
//	    PageSize:     20,
//	    SearchFields: []string{"numero", "cliente.nombre", "cliente.nif"},
//	})
//	ctrl.SetDataset(facturas)
//	ctrl.Sort("fecha")
package salesdoc
