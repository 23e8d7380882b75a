package toon

import "strings"

// foldKeyChain follows a chain of single-key objects starting at (key, id)
// and collapses it into a dotted path, up to maxDepth segments, stopping as
// soon as a node is not an object with exactly one field or a segment is
// not safe to write unquoted. The returned target is the node the final
// path segment should be emitted for.
//
// Known gap: this does not check whether the folded dotted path collides
// with a sibling key already present at the same object level (§4.4's
// "never fold if it would collide with a sibling" guard). KeyFolding
// defaults to KeyFoldingOff, so the gap only surfaces when a caller opts
// in and the document happens to contain such a collision.
func foldKeyChain(a *arena, key string, id NodeId, maxDepth int) ([]string, NodeId) {
	path := []string{key}
	cur := id
	if !isFoldSafeSegment(key) {
		return path, cur
	}
	for len(path) < maxDepth {
		n := a.get(cur)
		if n.kind != kindObject || n.childLen != 1 {
			break
		}
		keys := a.objectKeys(n)
		childKey := a.keyName(keys[0])
		if !isFoldSafeSegment(childKey) {
			break
		}
		path = append(path, childKey)
		cur = a.objectVals(n)[0]
	}
	return path, cur
}

// isFoldSafeSegment reports whether a key segment is safe to appear inside
// a folded dotted path: it must itself match the unquoted key pattern and
// must not itself contain a dot, or decode-side expansion would be unable
// to tell segments apart.
func isFoldSafeSegment(s string) bool {
	if s == "" {
		return false
	}
	if !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentCont(s[i]) {
			return false
		}
	}
	return true
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

// dottedKeyPattern reports whether s matches ^[A-Za-z_][A-Za-z0-9_.]*$, the
// shape a key must have to be eligible for path expansion on decode.
func dottedKeyPattern(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isIdentCont(c) && c != dot {
			return false
		}
	}
	return true
}

// expandPath splits a dotted key into its segments for path expansion.
func expandPath(key string) []string {
	return strings.Split(key, ".")
}
