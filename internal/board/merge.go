package board

import (
	"slices"

	"github.com/unitime/unitime/internal/models"
	"github.com/unitime/unitime/internal/types"
)

// Merge folds the changes local made since base into remote, a board that
// someone else saved after base was read.
//
// Records deleted locally are removed, and so are records remote deleted.
// Local title, content and column edits win over remote ones. If local
// reordered records, the records all three boards share take the local
// order; otherwise remote order stands. Records created locally go last.
// The result is sanitized, so tasks of a column deleted on either side go
// with it.
func Merge(base, local, remote models.Board) models.Board {
	merged := models.Board{
		Columns: mergeRecords(base.Columns, local.Columns, remote.Columns,
			func(c models.Column) types.ColumnID { return c.ID },
			func(b, l, r models.Column) models.Column {
				if l.Title != b.Title {
					r.Title = l.Title
				}
				return r
			}),
		Tasks: mergeRecords(base.Tasks, local.Tasks, remote.Tasks,
			func(t models.Task) types.TaskID { return t.ID },
			func(b, l, r models.Task) models.Task {
				if l.Content != b.Content {
					r.Content = l.Content
				}
				if l.ColumnID != b.ColumnID {
					r.ColumnID = l.ColumnID
				}
				return r
			}),
	}
	clean, _ := Sanitize(merged)
	return clean
}

func mergeRecords[T any, K comparable](base, local, remote []T, id func(T) K, edit func(b, l, r T) T) []T {
	inBase := indexBy(base, id)
	inLocal := indexBy(local, id)
	inRemote := indexBy(remote, id)

	out := make([]T, 0, len(remote)+len(local))
	for _, r := range remote {
		k := id(r)
		b, wasSaved := inBase[k]
		l, kept := inLocal[k]
		switch {
		case wasSaved && !kept:
			continue
		case wasSaved && kept:
			r = edit(b, l, r)
		}
		out = append(out, r)
	}
	inOut := indexBy(out, id)

	shared := func(items []T) []K {
		var keys []K
		for _, item := range items {
			k := id(item)
			_, b := inBase[k]
			_, l := inLocal[k]
			_, o := inOut[k]
			if b && l && o {
				keys = append(keys, k)
			}
		}
		return keys
	}
	if order := shared(local); !slices.Equal(shared(base), order) {
		// refill the slots of the shared records in local order
		next := 0
		for i, r := range out {
			k := id(r)
			if _, b := inBase[k]; !b {
				continue
			}
			if _, l := inLocal[k]; !l {
				continue
			}
			out[i] = inOut[order[next]]
			next++
		}
	}

	for _, l := range local {
		k := id(l)
		_, b := inBase[k]
		_, r := inRemote[k]
		if !b && !r {
			out = append(out, l)
		}
	}
	return out
}

func indexBy[T any, K comparable](items []T, id func(T) K) map[K]T {
	m := make(map[K]T, len(items))
	for _, item := range items {
		m[id(item)] = item
	}
	return m
}
