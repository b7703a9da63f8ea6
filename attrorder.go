package markuplift

// validatePermutation checks that got is a permutation of want — same
// multiset of names, same length, no duplicates introduced — and returns a
// ReordererViolationError describing any missing, extra, or duplicate names
// otherwise.
func validatePermutation(tag string, want, got []string) error {
	wantCount := make(map[string]int, len(want))
	for _, n := range want {
		wantCount[n]++
	}
	gotCount := make(map[string]int, len(got))
	for _, n := range got {
		gotCount[n]++
	}

	var missing, extra, dups []string
	for n, wc := range wantCount {
		if gc := gotCount[n]; gc < wc {
			missing = append(missing, n)
		}
	}
	for n, gc := range gotCount {
		wc := wantCount[n]
		if wc == 0 {
			extra = append(extra, n)
		} else if gc > wc {
			dups = append(dups, n)
		}
	}
	if len(missing) == 0 && len(extra) == 0 && len(dups) == 0 {
		return nil
	}
	return &ReordererViolationError{Tag: tag, Missing: missing, Extra: extra, Dups: dups}
}

// sortReorderer is an AttributeReorderer that returns a copy of names sorted
// lexically. It is unexported and not wired in as a default by any façade;
// code inside this package opts in via Config.ReorderAttributesWhen.
func sortReorderer(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	insertionSortStrings(out)
	return out
}

func insertionSortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}

// prioritizeReorderer returns a reorderer that moves any name in front to
// the head of the list, preserving relative order otherwise, then appends
// the rest in their original order.
func prioritizeReorderer(front ...string) AttributeReorderer {
	frontSet := make(map[string]int, len(front))
	for i, n := range front {
		frontSet[n] = i
	}
	return func(names []string) []string {
		var head []string = make([]string, len(front))
		found := make([]bool, len(front))
		var tail []string
		for _, n := range names {
			if idx, ok := frontSet[n]; ok {
				head[idx] = n
				found[idx] = true
				continue
			}
			tail = append(tail, n)
		}
		out := make([]string, 0, len(names))
		for i, ok := range found {
			if ok {
				out = append(out, head[i])
			}
		}
		out = append(out, tail...)
		return out
	}
}

// deferReorderer returns a reorderer that moves any name in back to the end
// of the list, in the order given by back, preserving the relative order of
// the other names.
func deferReorderer(back ...string) AttributeReorderer {
	backSet := make(map[string]struct{}, len(back))
	for _, n := range back {
		backSet[n] = struct{}{}
	}
	return func(names []string) []string {
		var head []string
		present := make(map[string]int, len(back))
		for _, n := range names {
			if _, ok := backSet[n]; ok {
				present[n]++
			} else {
				head = append(head, n)
			}
		}
		for _, n := range back {
			for ; present[n] > 0; present[n]-- {
				head = append(head, n)
			}
		}
		return head
	}
}
