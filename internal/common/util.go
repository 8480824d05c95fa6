package common

// WipeByteArray overwrites b with zeros. It is used to drop passwords read
// from the terminal as soon as they have been copied into a form.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
