// Package cliargs provides argv-style argument shifting for callers
// building their own command-line parsing.
package cliargs

// Shift pops the first argument off args, advancing the slice in place.
// Panics when no arguments remain.
func Shift(args *[]string) string {
	if len(*args) == 0 {
		panic("cliargs: no arguments left to shift")
	}
	arg := (*args)[0]
	*args = (*args)[1:]
	return arg
}
