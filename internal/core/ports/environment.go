package ports

/*
Environment exposes the parts of the interpreter's own process state that
builtins read or mutate. It is implemented on top of the os package.
*/
type Environment interface {
	LookupEnv(key string) (string, bool)
	Chdir(dir string) error
	Getwd() (string, error)
}
