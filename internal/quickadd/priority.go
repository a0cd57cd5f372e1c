package quickadd

// extractPriority matches !1..!5 or a !keyword form. When both appear the
// numeric form governs and only its token is erased; the keyword token
// stays in the text.
func extractPriority(st *state, p *Patch) {
	var (
		numStart, numEnd, numVal int
		kwStart, kwEnd, kwVal    int
		haveNum, haveKw          bool
	)

	for i := 0; i < len(st.lower); i++ {
		if st.lower[i] != '!' || !wordStart(st.lower, i) {
			continue
		}
		rest := st.lower[i+1:]
		if len(rest) > 0 && rest[0] >= '1' && rest[0] <= '5' && wordEnd(st.lower, i+2) {
			if !haveNum {
				numStart, numEnd, numVal = i, i+2, int(rest[0]-'0')
				haveNum = true
			}
			continue
		}
		if haveKw {
			continue
		}
		if word := leadingWord(rest); word != "" {
			if val, ok := priorityKeywords[word]; ok {
				kwStart, kwEnd, kwVal = i, i+1+len(word), val
				haveKw = true
			}
		}
	}

	switch {
	case haveNum:
		p.Priority = numVal
		st.erase(numStart, numEnd)
	case haveKw:
		p.Priority = kwVal
		st.erase(kwStart, kwEnd)
	}
}
