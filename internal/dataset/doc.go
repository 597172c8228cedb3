// Package dataset holds the tabular boundary of the pipeline: a Table is a
// header plus string cells, exactly as a vendor export was read. Readers turn
// delimited text files and workbooks into Tables; the number helpers convert
// cell text into domain values.
//
// Empty cells are reported as missing, mirroring how the exports leave
// unknown values blank.
//
//	gsd, err := dataset.ReadFile("input/3f2a...c1.xlsx")
//	past, err := dataset.ReadFile("past/gsd_2022.csv")
//	all := dataset.Concat("gsd", gsd, past)
//	sku, ok := all.Value(0, "SKU")
package dataset
