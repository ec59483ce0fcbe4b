// Package relsync computes the storage mutations needed to bring a volunteer's
// relations from their current state to a requested state. It performs no I/O;
// the volunteer repository applies the plans it produces inside a transaction.
package relsync

// MembershipDiff is the outcome of comparing a volunteer's current membership
// ids with a requested set.
type MembershipDiff struct {
	// Changed is false when the request carried no ids. An empty request means
	// "leave as is", never "remove everything".
	Changed  bool
	ToCreate []string
	ToDelete []string
	// Result is the value the denormalized id cache must hold afterwards.
	Result []string
}

// Diff computes toCreate = desired \ current and toDelete = current \ desired.
// Output order follows the order of the inputs; duplicates are collapsed.
func Diff(current, desired []string) MembershipDiff {
	if len(desired) == 0 {
		return MembershipDiff{Result: unique(current)}
	}

	want := unique(desired)
	have := unique(current)

	wantSet := toSet(want)
	haveSet := toSet(have)

	diff := MembershipDiff{Changed: true, Result: want}
	for _, id := range want {
		if _, ok := haveSet[id]; !ok {
			diff.ToCreate = append(diff.ToCreate, id)
		}
	}
	for _, id := range have {
		if _, ok := wantSet[id]; !ok {
			diff.ToDelete = append(diff.ToDelete, id)
		}
	}

	return diff
}

// Empty reports whether applying the diff would touch any join row.
func (d MembershipDiff) Empty() bool {
	return len(d.ToCreate) == 0 && len(d.ToDelete) == 0
}

func unique(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
