package types

// Simulator owns a fixed set of command names within a single category
type Simulator interface {
	Name() string
	Category() Category
	Commands() Signatures
	Command(name string) (Executable, error)
}

// Fallback is implemented by a simulator that also handles names nobody registered
type Fallback interface {
	Simulator
	Unknown(name string) Executable
}
