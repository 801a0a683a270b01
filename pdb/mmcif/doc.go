// Package mmcif reads a file in mmcif/cif format.
//
// Reading mmcif files is interesting because they are so big, but we
// do not want much information from them. If one looks at the format
// there are some features that make it simpler.
//  1. The first character on the line is decisive. If it is a data item
//     it has to be a "_". A loop starts with loop_.
//  2. A semicolon in the first column starts a text field, which runs
//     to the next line starting with a semicolon.
//
// There is a lot of information that will never be of interest to us
// (solvents, crystallisation details, ..). Tell the Reader which
// categories to Keep and it jumps over the rest. What is kept goes into
// a Container of Category tables, with the loop rows in file order.
// Lone data items, like _cell.length_a, become a table with one row.
//
// A question mark, ?, means a missing value. A dot, ., means not
// appropriate or deliberately left out. Both are read as empty strings.
//
// Typical use is
//
//	mr := mmcif.NewReader(fp)
//	mr.Keep("cell", "atom_site")
//	c, err := mr.Read()
//	x := c.Category("atom_site").Column("Cartn_x")
package mmcif
