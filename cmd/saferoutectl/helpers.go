package main

import "github.com/spf13/pflag"

func findByID[T any](items []T, id int64, key func(T) int64) *T {
	for i := range items {
		if key(items[i]) == id {
			return &items[i]
		}
	}
	return nil
}

// setIfChanged copies v into dst when the named flag was given.
func setIfChanged(fs *pflag.FlagSet, name string, dst *string, v string) {
	if fs.Changed(name) {
		*dst = v
	}
}
