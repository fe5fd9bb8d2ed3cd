/*
Package history defines core domain entities related to command history.
*/
package history

/*
Entry is a single retained history line together with its absolute command
number. Numbers start at 1 and keep counting after old entries are evicted.
*/
type Entry struct {
	Number  int
	Command string
}
