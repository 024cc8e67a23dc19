package naming

// CollisionDetector remembers which input path first produced each normalized
// name during a run. It does not rename anything: colliding inputs still write
// to the same outputs, the detector only lets the caller report it.
// Not safe for concurrent use.
type CollisionDetector struct {
	owners map[string]string // normalized name -> input path
}

func NewCollisionDetector() *CollisionDetector {
	return &CollisionDetector{owners: make(map[string]string)}
}

// Claim records input as the owner of name. If a different input already owns
// the name, that input is returned along with true.
func (cd *CollisionDetector) Claim(input, name string) (string, bool) {
	owner, exists := cd.owners[name]
	if exists && owner != input {
		return owner, true
	}
	cd.owners[name] = input
	return "", false
}
