package common

type Module string

const (
	ModuleInscription Module = "inscription"
)

func (m Module) String() string {
	return string(m)
}
