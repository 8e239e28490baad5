package ir

// IsEmptyValue reports whether node is an array with no values or whose
// values are themselves recursively empty arrays. Missing-field detection
// treats a described position holding such a value as vacant: an optional
// array that expands to nothing excuses its descendants.
func IsEmptyValue(node *Node) bool {
	if node.Type != ArrayType {
		return false
	}
	for _, v := range node.Values {
		if !IsEmptyValue(v) {
			return false
		}
	}
	return true
}
