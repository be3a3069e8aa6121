package broken

// Mismatched assignment, the checker reports a type error here.
func Bad() int {
	var s string = 42
	return s
}
