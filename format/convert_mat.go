package format

import "sort"

// DokToCoo sorts a Dok's entries lexicographically by (row, col) into a
// fresh Coo, establishing the canonical order spec.md §3 requires of the
// Coo family.
func DokToCoo(src *Dok) *Coo {
	keys := make([]rc, 0, len(src.Entries))
	for k := range src.Entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].r != keys[j].r {
			return keys[i].r < keys[j].r
		}
		return keys[i].c < keys[j].c
	})

	dst := NewCoo(src.Rows, src.Cols, src.HasValues)
	dst.Row = make([]int, len(keys))
	dst.Col = make([]int, len(keys))
	dst.Val = make([][]byte, len(keys))
	for i, k := range keys {
		dst.Row[i], dst.Col[i], dst.Val[i] = k.r, k.c, src.Entries[k]
	}
	return dst
}

// CooToDok scatters a Coo's triples back into a Dok; order is irrelevant
// for Dok.
func CooToDok(src *Coo) *Dok {
	dst := NewDok(src.Rows, src.Cols, src.HasValues)
	for i := range src.Row {
		dst.Entries[rc{src.Row[i], src.Col[i]}] = src.Val[i]
	}
	return dst
}

// CooToLil regroups a (row,col,value)-sorted Coo into per-row runs,
// preserving the column order already present in Coo (spec.md §4.3
// "Coo → Lil must preserve the ordering").
func CooToLil(src *Coo) *Lil {
	dst := NewLil(src.Rows, src.Cols, src.HasValues)
	for i := range src.Row {
		r := src.Row[i]
		dst.Row[r].Col = append(dst.Row[r].Col, src.Col[i])
		dst.Row[r].Val = append(dst.Row[r].Val, src.Val[i])
	}
	return dst
}

// LilToCoo flattens a Lil's per-row runs into a single (row,col,value)
// sequence; because each row's run is already column-sorted and rows are
// visited in increasing order, the result satisfies the Coo lexicographic
// invariant without a secondary sort.
func LilToCoo(src *Lil) *Coo {
	dst := NewCoo(src.Rows, src.Cols, src.HasValues)
	for r, row := range src.Row {
		for j, c := range row.Col {
			dst.Row = append(dst.Row, r)
			dst.Col = append(dst.Col, c)
			dst.Val = append(dst.Val, row.Val[j])
		}
	}
	return dst
}

// CooToCsr builds Ap by counting entries per row, Aj/Ax by one pass over
// the (already row-sorted) Coo triples — Ap ends up non-decreasing and
// Aj strictly increasing per row because Coo's lexicographic order
// guarantees columns within a row are already ascending (spec.md §4.3).
func CooToCsr(src *Coo) *Csr {
	dst := NewCsr(src.Rows, src.Cols, src.HasValues)
	counts := make([]int, src.Rows)
	for _, r := range src.Row {
		counts[r]++
	}
	ap := make([]int, src.Rows+1)
	sum := 0
	for i, c := range counts {
		ap[i] = sum
		sum += c
	}
	ap[src.Rows] = sum
	dst.Ap = ap
	dst.Aj = append([]int(nil), src.Col...)
	if src.HasValues {
		dst.Ax = append([][]byte(nil), src.Val...)
	}
	return dst
}

// CsrToCoo reconstructs row indices by Ap expansion: for each row i, every
// slot in [Ap[i], Ap[i+1)) belongs to row i (spec.md §4.3 "Csr → Coo must
// reconstruct row indices by Ap expansion").
func CsrToCoo(src *Csr) *Coo {
	dst := NewCoo(src.Rows, src.Cols, src.HasValues)
	dst.Row = make([]int, len(src.Aj))
	dst.Col = append([]int(nil), src.Aj...)
	if src.HasValues {
		dst.Val = append([][]byte(nil), src.Ax...)
	}
	for i := 0; i < src.Rows; i++ {
		start, end := src.RowRange(i)
		for k := start; k < end; k++ {
			dst.Row[k] = i
		}
	}
	return dst
}
