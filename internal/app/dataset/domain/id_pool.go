package domain

// Intner is the part of a random source the pool needs.
type Intner interface {
	IntN(n int) int
}

// IDPool hands out dense identifiers 1..N for one entity and samples
// foreign keys from the identifiers handed out so far.
// Identifiers are never reused, so the pool only stores the high-water mark.
type IDPool struct {
	entity string
	last   int64
}

// NewIDPool creates an empty pool for the named entity.
func NewIDPool(entity string) *IDPool {
	return &IDPool{entity: entity}
}

// Next allocates the next identifier.
func (p *IDPool) Next() int64 {
	p.last++
	return p.last
}

// Count returns how many identifiers have been allocated.
func (p *IDPool) Count() int64 {
	return p.last
}

// Entity returns the entity name the pool was created for.
func (p *IDPool) Entity() string {
	return p.entity
}

// Sample picks an already allocated identifier uniformly at random.
func (p *IDPool) Sample(rnd Intner) (int64, error) {
	if p.last == 0 {
		return 0, ErrEmptyPool
	}
	return int64(rnd.IntN(int(p.last))) + 1, nil
}
