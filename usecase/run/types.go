package run

import "github.com/hostwire/hostwire/domain"

// Repos holds repositories needed for run history use cases.
type Repos struct {
	Run domain.RunRepository
}

// UseCase wires repositories needed for run history use cases.
type UseCase struct {
	Repos *Repos
}
