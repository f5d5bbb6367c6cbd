// Package tablestate keeps the state of an interactive table over an
// in-memory dataset: search filtering, sorting by dotted field paths,
// pagination and a row selection that survives page changes.
//
// The central type is Controller. Every operation changes exactly one
// state axis and the derived rows are recomputed in the fixed order
// filter, sort, paginate, where every stage is cached by its own inputs:
//
//	ctrl := tablestate.NewController(
//	    func(doc *salesdoc.Document) uuid.UUID { return doc.ID },
//	    tablestate.Config{
//	        PageSize:     25,
//	        SearchFields: []string{"numero", "cliente.nombre"},
//	    },
//	)
//	ctrl.SetDataset(documents)
//	ctrl.Search("acme")
//	ctrl.Sort("fecha")
//	for _, doc := range ctrl.VisibleRows() {
//	    fmt.Println(doc.Numero)
//	}
//
// The package also contains a small table View abstraction
// that the csvtable, htmltable, exceltable, sqltable and termtable
// sub-packages use to read and write tables.
// ViewToStructSlice loads the rows of any View into typed structs.
package tablestate
