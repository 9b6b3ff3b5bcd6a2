// Package io reads and writes cost matrices.
//
// # Table Format
//
// The primary format is a tab-separated table with one row per post:
//
//	0	2	5	9
//	NA	0	2	6
//	NA	NA	0	3
//	NA	NA	NA	0
//
// Fields are separated by a single tab and rows by "\n". "NA" marks a cell
// with no cost. Cells below the diagonal are never parsed, so any token is
// tolerated there, but the writer always emits "NA". Readers accept "\r\n"
// line endings and a trailing newline; writers emit neither.
//
// # JSON Format
//
// [WriteJSON] and [ReadJSON] use an object holding the size and the full
// square of cells, with null for undefined ones:
//
//	{
//	  "size": 3,
//	  "costs": [
//	    [0, 4, 9],
//	    [null, 0, 2],
//	    [null, null, 0]
//	  ]
//	}
//
// [Import] and [Export] choose between the two by file extension.
//
// All readers hand the parsed cells to [cost.FromRows], so structural errors
// match the sentinels of package cost with [errors.Is]. Parse failures match
// [ErrSyntax].
package io
