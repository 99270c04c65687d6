package runtime

// Must panics if err is non-nil. Used for wiring that cannot fail at
// runtime unless the binary is misconfigured at compile time.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
