package cmds

import "strings"

func describe(command *Command, desc []string) *Command {
	if len(desc) > 0 {
		command.Desc(strings.Join(desc, " "))
	}
	return command
}

// Var defines a flag taking one argument. name+"." resets it to the zero value.
func Var[T any](name string, desc ...string) *T {
	var value T

	// set
	Define(name, describe(Func(func(v T) {
		value = v
	}), desc))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Hide())

	return &value
}

// Switch defines a boolean flag. "!"+name turns it off.
func Switch(name string, desc ...string) *bool {
	var value bool

	// set true
	Define(name, describe(Func(func() {
		value = true
	}), desc))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Hide())

	return &value
}

// Collect defines a repeatable flag.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	// append
	Define(name, describe(Func(func(v T) {
		value = append(value, v)
	}), desc))
	return &value
}
