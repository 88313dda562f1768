package nowiki

import "strings"

// DefaultSeparator is used by csv blocks that do not declare their own.
const DefaultSeparator = ";"

const csvTableClass = "moin-csv-table moin-sortable"

// buildTable splits content into a header row (first line) and body rows,
// splitting every row on sep. Rows keep whatever cell count the split
// produces; consumers must tolerate ragged rows. Empty content yields a
// table with a zero-cell header row and no body rows.
func buildTable(content, sep string) *Node {
	table := NewNode(TagTable).SetAttr(AttrClass, csvTableClass)

	var head []string
	var rows [][]string
	if content != "" {
		lines := strings.Split(content, "\n")
		head = strings.Split(lines[0], sep)
		for _, line := range lines[1:] {
			rows = append(rows, strings.Split(line, sep))
		}
	}

	header := NewNode(TagTableHeader).Append(buildTableRow(head))
	body := NewNode(TagTableBody)
	for _, row := range rows {
		body.Append(buildTableRow(row))
	}

	return table.Append(header, body)
}

func buildTableRow(cells []string) *Node {
	row := NewNode(TagTableRow)
	for _, cell := range cells {
		row.Append(NewNode(TagTableCell).Append(NewText(cell)))
	}
	return row
}
