package osenv

import (
	"os"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// OSEnvironment implements the Environment interface on the current process.
type OSEnvironment struct{}

// NewOSEnvironment creates a new OSEnvironment.
func NewOSEnvironment() ports.Environment {
	return &OSEnvironment{}
}

func (e *OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Chdir changes the working directory of the interpreter process itself.
func (e *OSEnvironment) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (e *OSEnvironment) Getwd() (string, error) {
	return os.Getwd()
}
