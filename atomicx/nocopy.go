package atomicx

// noCopy may be embedded into structs which must not be copied after the
// first use.  go vet's copylocks checker recognises the Lock/Unlock pair.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
